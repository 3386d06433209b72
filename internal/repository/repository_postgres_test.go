package repository

import (
	"os"
	"testing"
	"time"

	"github.com/gymtrackpage/hybridx/internal/database"
	"github.com/gymtrackpage/hybridx/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T, tables ...interface{}) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgres(dsn)
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrateTables(db, tables...))

	db.Exec("DELETE FROM workout_completions")
	db.Exec("DELETE FROM user_progresses")
	db.Exec("DELETE FROM workouts")
	db.Exec("DELETE FROM programs")

	return db
}

func TestWorkoutRepoListOrdering(t *testing.T) {
	db := setupTestDB(t, &models.Program{}, &models.Workout{})
	programs := NewProgramRepo(db)
	workouts := NewWorkoutRepo(db)

	program, err := programs.Create(&models.Program{Name: "Beginner", DurationWeeks: 2})
	require.NoError(t, err)

	// вставляем не по порядку
	for _, slot := range [][2]int{{2, 1}, {1, 3}, {1, 1}, {2, 4}} {
		_, err := workouts.Create(&models.Workout{
			ProgramID: program.ID,
			Week:      slot[0],
			Day:       slot[1],
			Name:      "Session",
		})
		require.NoError(t, err)
	}

	list, err := workouts.ListByProgram(program.ID)
	require.NoError(t, err)
	require.Len(t, list, 4)

	var got [][2]int
	for _, w := range list {
		got = append(got, [2]int{w.Week, w.Day})
	}
	assert.Equal(t, [][2]int{{1, 1}, {1, 3}, {2, 1}, {2, 4}}, got)
}

func TestProgressRepoVersionedUpdate(t *testing.T) {
	db := setupTestDB(t, &models.Program{}, &models.UserProgress{})
	repo := NewProgressRepo(db)

	created, err := repo.Create(&models.UserProgress{
		UserID:      42,
		ProgramID:   1,
		CurrentWeek: 1,
		CurrentDay:  1,
		StartDate:   time.Now(),
		IsActive:    true,
	})
	require.NoError(t, err)

	rows, err := repo.UpdateFields(42, created.Version, map[string]interface{}{
		"current_week": 2,
		"current_day":  1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// устаревшая версия — запись не проходит
	rows, err = repo.UpdateFields(42, created.Version, map[string]interface{}{
		"current_week": 9,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	progress, err := repo.FindActiveByUserID(42)
	require.NoError(t, err)
	assert.Equal(t, 2, progress.CurrentWeek)
	assert.Equal(t, 1, progress.CurrentDay)
	assert.Equal(t, created.Version+1, progress.Version)
}

func TestCompletionRepoInclusiveWindow(t *testing.T) {
	db := setupTestDB(t, &models.Workout{}, &models.WorkoutCompletion{})
	repo := NewCompletionRepo(db)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC)

	for _, c := range []*models.WorkoutCompletion{
		{UserID: 42, WorkoutID: 1, CompletedAt: start},
		{UserID: 42, WorkoutID: 2, CompletedAt: end},
		{UserID: 42, WorkoutID: 3, CompletedAt: start.AddDate(0, 0, 2), Skipped: true},
		{UserID: 42, WorkoutID: 4, CompletedAt: end.Add(time.Minute)},
	} {
		_, err := repo.Create(c)
		require.NoError(t, err)
	}

	completed, err := repo.FindCompletedInWindow(42, start, end)
	require.NoError(t, err)
	require.Len(t, completed, 2)
	assert.Equal(t, uint(2), completed[0].WorkoutID)
	assert.Equal(t, uint(1), completed[1].WorkoutID)

	all, err := repo.FindByUserID(42, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
