package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkoutCompletion — журнал выполнений, только добавление.
type WorkoutCompletion struct {
	gorm.Model
	UserID      uint    `gorm:"not null;index"`
	User        User    `gorm:"foreignKey:UserID"`
	WorkoutID   uint    `gorm:"not null"`
	Workout     Workout `gorm:"foreignKey:WorkoutID"`
	CompletedAt time.Time `gorm:"not null;index"`
	Skipped     bool
	Notes       string
}
