package repository

import (
	"time"

	"github.com/gymtrackpage/hybridx/internal/models"
	"gorm.io/gorm"
)

type CompletionRepository interface {
	Create(completion *models.WorkoutCompletion) (*models.WorkoutCompletion, error)
	// FindByUserID — журнал пользователя, новые записи первыми.
	// Границы окна включительные.
	FindByUserID(userID uint, from, to *time.Time) ([]*models.WorkoutCompletion, error)
	// FindCompletedInWindow — как FindByUserID, но только skipped=false
	// и окно обязательно.
	FindCompletedInWindow(userID uint, from, to time.Time) ([]*models.WorkoutCompletion, error)
}

type completionRepo struct {
	db *gorm.DB
}

func NewCompletionRepo(db *gorm.DB) CompletionRepository {
	return &completionRepo{db: db}
}

func (r *completionRepo) Create(completion *models.WorkoutCompletion) (*models.WorkoutCompletion, error) {
	err := r.db.Create(completion).Error
	return completion, err
}

func (r *completionRepo) FindByUserID(userID uint, from, to *time.Time) ([]*models.WorkoutCompletion, error) {
	q := r.db.Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("completed_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("completed_at <= ?", *to)
	}

	var completions []*models.WorkoutCompletion
	err := q.Order("completed_at desc").Find(&completions).Error
	return completions, err
}

func (r *completionRepo) FindCompletedInWindow(userID uint, from, to time.Time) ([]*models.WorkoutCompletion, error) {
	var completions []*models.WorkoutCompletion
	err := r.db.
		Where("user_id = ? AND skipped = ? AND completed_at >= ? AND completed_at <= ?",
			userID, false, from, to).
		Order("completed_at desc").
		Find(&completions).Error
	return completions, err
}
