package service

import (
	"errors"
	"sync"
	"time"

	"github.com/gymtrackpage/hybridx/internal/models"
	"github.com/gymtrackpage/hybridx/internal/repository"
	"gorm.io/gorm"
)

// WorkoutService выдаёт тренировку дня и двигает позицию пользователя.
type WorkoutService struct {
	users    repository.UserRepository
	programs repository.ProgramRepository
	workouts repository.WorkoutRepository
	progress repository.ProgressRepository

	now func() time.Time

	mu    sync.Mutex
	locks map[uint]*sync.Mutex // сериализация резолвера по пользователю
}

func NewWorkoutService(
	users repository.UserRepository,
	programs repository.ProgramRepository,
	workouts repository.WorkoutRepository,
	progress repository.ProgressRepository,
) *WorkoutService {
	return &WorkoutService{
		users:    users,
		programs: programs,
		workouts: workouts,
		progress: progress,
		now:      time.Now,
		locks:    make(map[uint]*sync.Mutex),
	}
}

func (s *WorkoutService) userLock(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// ResolveToday возвращает тренировку на сегодня.
//
// Возвращает (nil, nil), если в программе нет ни одной тренировки, и
// ErrNoProgramAssigned, если программа не назначена. Если сохранённая
// позиция указывает на дырку в каталоге, позиция сдвигается вперёд до
// ближайшей тренировки (catch-up); если позиция за концом программы —
// на первую тренировку (cycle). Оба сдвига сохраняются. При точном
// совпадении ничего не записывается.
func (s *WorkoutService) ResolveToday(userID uint) (*models.Workout, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	workout, err := s.resolveOnce(userID)
	if errors.Is(err, errConflictRetry) {
		// одна повторная попытка после проигранной гонки
		workout, err = s.resolveOnce(userID)
		if errors.Is(err, errConflictRetry) {
			return nil, ErrProgressConflict
		}
	}
	return workout, err
}

func (s *WorkoutService) resolveOnce(userID uint) (*models.Workout, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user.ProgramID == nil {
		return nil, ErrNoProgramAssigned
	}
	programID := *user.ProgramID

	progress, err := s.progress.FindActiveByUserID(userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		progress, err = s.startProgress(user, programID)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	if progress.ProgramID != programID {
		if err := s.switchProgram(progress, programID); err != nil {
			return nil, err
		}
	}

	sequence, err := s.workouts.ListByProgram(programID)
	if err != nil {
		return nil, err
	}
	if len(sequence) == 0 {
		return nil, nil // каталог пуст — тренировки на сегодня нет
	}

	// точное совпадение: позицию не трогаем
	for _, w := range sequence {
		if w.Week == progress.CurrentWeek && w.Day == progress.CurrentDay {
			return w, nil
		}
	}

	// catch-up: первая запись строго дальше текущей позиции
	for _, w := range sequence {
		if w.Week > progress.CurrentWeek ||
			(w.Week == progress.CurrentWeek && w.Day > progress.CurrentDay) {
			return s.moveTo(progress, w)
		}
	}

	// позиция за концом программы — начинаем с первой тренировки
	return s.moveTo(progress, sequence[0])
}

func (s *WorkoutService) moveTo(progress *models.UserProgress, w *models.Workout) (*models.Workout, error) {
	rows, err := s.progress.UpdateFields(progress.UserID, progress.Version, map[string]interface{}{
		"current_week": w.Week,
		"current_day":  w.Day,
	})
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, errConflictRetry
	}
	progress.CurrentWeek = w.Week
	progress.CurrentDay = w.Day
	progress.Version++
	return w, nil
}

// startProgress создаёт запись прогресса при первом обращении.
// Позиция рассчитывается от целевой даты пользователя, если она задана.
func (s *WorkoutService) startProgress(user *models.User, programID uint) (*models.UserProgress, error) {
	program, err := s.programs.FindByID(programID)
	if err != nil {
		return nil, err
	}

	sched := ComputeSchedule(s.now(), program.DurationWeeks, user.EventDate)
	return s.progress.Create(&models.UserProgress{
		UserID:        user.ID,
		ProgramID:     programID,
		CurrentWeek:   sched.CurrentWeek,
		CurrentDay:    sched.CurrentDay,
		StartDate:     sched.StartDate,
		TotalWorkouts: program.DurationWeeks * program.SessionsPerWeek,
		IsActive:      true,
	})
}

// switchProgram сбрасывает прогресс на начало новой программы.
func (s *WorkoutService) switchProgram(progress *models.UserProgress, programID uint) error {
	program, err := s.programs.FindByID(programID)
	if err != nil {
		return err
	}

	startDate := midnight(s.now())
	rows, err := s.progress.UpdateFields(progress.UserID, progress.Version, map[string]interface{}{
		"program_id":         programID,
		"current_week":       1,
		"current_day":        1,
		"start_date":         startDate,
		"completed_workouts": 0,
		"total_workouts":     program.DurationWeeks * program.SessionsPerWeek,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return errConflictRetry
	}

	progress.ProgramID = programID
	progress.CurrentWeek = 1
	progress.CurrentDay = 1
	progress.StartDate = startDate
	progress.CompletedWorkouts = 0
	progress.TotalWorkouts = program.DurationWeeks * program.SessionsPerWeek
	progress.Version++
	return nil
}

// AdvanceProgress — явный сдвиг позиции после отметки о выполнении.
// Запись в журнал выполнений сама по себе позицию не двигает.
func (s *WorkoutService) AdvanceProgress(userID uint) (*models.UserProgress, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	for attempt := 0; attempt < 2; attempt++ {
		progress, err := s.progress.FindActiveByUserID(userID)
		if err != nil {
			return nil, err
		}

		week, day := progress.CurrentWeek, progress.CurrentDay+1
		if day > 7 {
			week, day = week+1, 1
		}

		rows, err := s.progress.UpdateFields(userID, progress.Version, map[string]interface{}{
			"current_week":       week,
			"current_day":        day,
			"completed_workouts": progress.CompletedWorkouts + 1,
		})
		if err != nil {
			return nil, err
		}
		if rows > 0 {
			progress.CurrentWeek = week
			progress.CurrentDay = day
			progress.CompletedWorkouts++
			progress.Version++
			return progress, nil
		}
	}
	return nil, ErrProgressConflict
}

// GetProgress — текущая позиция пользователя, без побочных эффектов.
func (s *WorkoutService) GetProgress(userID uint) (*models.UserProgress, error) {
	return s.progress.FindActiveByUserID(userID)
}
