package service

import (
	"fmt"
	"time"

	"github.com/gymtrackpage/hybridx/internal/models"
	"github.com/gymtrackpage/hybridx/internal/repository"
)

type CompletionService struct {
	repo repository.CompletionRepository
}

func NewCompletionService(repo repository.CompletionRepository) *CompletionService {
	return &CompletionService{repo: repo}
}

// RecordCompletion добавляет запись в журнал выполнений.
// Позицию пользователя не трогает — её двигает отдельный вызов
// WorkoutService.AdvanceProgress.
func (s *CompletionService) RecordCompletion(dto RecordCompletionDTO) (*models.WorkoutCompletion, error) {
	if dto.UserID == 0 {
		return nil, fmt.Errorf("не указан пользователь")
	}
	if dto.WorkoutID == 0 {
		return nil, fmt.Errorf("не указана тренировка")
	}

	completedAt := dto.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	return s.repo.Create(&models.WorkoutCompletion{
		UserID:      dto.UserID,
		WorkoutID:   dto.WorkoutID,
		CompletedAt: completedAt,
		Skipped:     dto.Skipped,
		Notes:       dto.Notes,
	})
}

// ListCompletions - журнал пользователя, новые записи первыми.
// Окно опционально, границы включительные.
func (s *CompletionService) ListCompletions(userID uint, from, to *time.Time) ([]*models.WorkoutCompletion, error) {
	return s.repo.FindByUserID(userID, from, to)
}

// ListWeeklyCompletions - выполненные (skipped=false) тренировки в окне.
// Используется только для отчётов, позицию по ним не восстанавливаем.
func (s *CompletionService) ListWeeklyCompletions(userID uint, from, to time.Time) ([]*models.WorkoutCompletion, error) {
	return s.repo.FindCompletedInWindow(userID, from, to)
}
