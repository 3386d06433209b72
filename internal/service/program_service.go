package service

import (
	"fmt"

	"github.com/gymtrackpage/hybridx/internal/models"
	"github.com/gymtrackpage/hybridx/internal/repository"
)

type ProgramService struct {
	programs repository.ProgramRepository
	workouts repository.WorkoutRepository
}

func NewProgramService(programs repository.ProgramRepository, workouts repository.WorkoutRepository) *ProgramService {
	return &ProgramService{programs: programs, workouts: workouts}
}

func (s *ProgramService) CreateProgram(dto CreateProgramDTO) (*models.Program, error) {
	// Валидация
	if dto.Name == "" {
		return nil, fmt.Errorf("название программы не может быть пустым")
	}
	if dto.DurationWeeks < 1 {
		return nil, fmt.Errorf("длительность должна быть не меньше одной недели")
	}

	program := &models.Program{
		Name:             dto.Name,
		Description:      dto.Description,
		Difficulty:       dto.Difficulty,
		DurationWeeks:    dto.DurationWeeks,
		SessionsPerWeek:  dto.SessionsPerWeek,
		CategoryID:       dto.CategoryID,
		TargetEventWeeks: dto.TargetEventWeeks,
	}
	if program.SessionsPerWeek == 0 {
		program.SessionsPerWeek = 6
	}

	return s.programs.Create(program)
}

func (s *ProgramService) ListPrograms() ([]*models.Program, error) {
	return s.programs.FindAll()
}

func (s *ProgramService) GetProgramByID(id uint) (*models.Program, error) {
	if id == 0 {
		return nil, fmt.Errorf("неверный ID")
	}
	return s.programs.FindByID(id)
}

func (s *ProgramService) AddWorkout(dto CreateWorkoutDTO) (*models.Workout, error) {
	if dto.Name == "" {
		return nil, fmt.Errorf("название тренировки не может быть пустым")
	}
	if dto.Week < 1 || dto.Day < 1 {
		return nil, fmt.Errorf("неделя и день должны быть не меньше 1")
	}

	// программа должна существовать
	if _, err := s.programs.FindByID(dto.ProgramID); err != nil {
		return nil, fmt.Errorf("программа не найдена: %w", err)
	}

	return s.workouts.Create(&models.Workout{
		ProgramID:                dto.ProgramID,
		Week:                     dto.Week,
		Day:                      dto.Day,
		Name:                     dto.Name,
		Description:              dto.Description,
		EstimatedDurationMinutes: dto.EstimatedDurationMinutes,
		Exercises:                dto.Exercises,
	})
}

func (s *ProgramService) ListWorkouts(programID uint) ([]*models.Workout, error) {
	if programID == 0 {
		return nil, fmt.Errorf("неверный ID")
	}
	return s.workouts.ListByProgram(programID)
}
