package repository

import (
	"github.com/gymtrackpage/hybridx/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository interface {
	Create(workout *models.Workout) (*models.Workout, error)
	// ListByProgram возвращает тренировки программы, упорядоченные
	// по (week, day) — на этот порядок опирается резолвер.
	ListByProgram(programID uint) ([]*models.Workout, error)
	FindByID(id uint) (*models.Workout, error)
	Delete(id uint) error
}

type workoutRepo struct {
	db *gorm.DB
}

func NewWorkoutRepo(db *gorm.DB) WorkoutRepository {
	return &workoutRepo{db: db}
}

func (r *workoutRepo) Create(workout *models.Workout) (*models.Workout, error) {
	err := r.db.Create(workout).Error
	return workout, err
}

func (r *workoutRepo) ListByProgram(programID uint) ([]*models.Workout, error) {
	var workouts []*models.Workout
	err := r.db.Where("program_id = ?", programID).
		Order("week asc, day asc").
		Find(&workouts).Error
	return workouts, err
}

func (r *workoutRepo) FindByID(id uint) (*models.Workout, error) {
	var workout models.Workout
	err := r.db.First(&workout, id).Error
	return &workout, err
}

func (r *workoutRepo) Delete(id uint) error {
	return r.db.Delete(&models.Workout{}, id).Error
}
