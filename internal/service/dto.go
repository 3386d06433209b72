package service

import (
	"time"

	"github.com/gymtrackpage/hybridx/internal/models"
)

// Program DTOs
type CreateProgramDTO struct {
	Name             string
	Description      string
	Difficulty       string
	DurationWeeks    int
	SessionsPerWeek  int
	CategoryID       *uint
	TargetEventWeeks *int
}

type CreateWorkoutDTO struct {
	ProgramID                uint
	Week                     int
	Day                      int
	Name                     string
	Description              string
	EstimatedDurationMinutes int
	Exercises                models.ExerciseList
}

// Category DTOs
type CreateCategoryDTO struct {
	Name        string
	Description string
	Type        string
}

// User DTOs
type CreateUserDTO struct {
	Name  string
	Email string
	Role  string
}

type AssignProgramDTO struct {
	ProgramID uint
	EventDate *time.Time
}

// Completion DTOs
type RecordCompletionDTO struct {
	UserID      uint
	WorkoutID   uint
	CompletedAt time.Time
	Skipped     bool
	Notes       string
}
