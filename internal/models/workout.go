package models

import "gorm.io/gorm"

// Workout — одна авторская тренировка программы. Адресуется тройкой
// (ProgramID, Week, Day); дни могут отсутствовать (дни отдыха).
type Workout struct {
	gorm.Model
	ProgramID                uint    `gorm:"not null;uniqueIndex:idx_workout_slot"`
	Program                  Program `gorm:"foreignKey:ProgramID"`
	Week                     int     `gorm:"not null;uniqueIndex:idx_workout_slot"`
	Day                      int     `gorm:"not null;uniqueIndex:idx_workout_slot"`
	Name                     string  `gorm:"type:varchar(100);not null"`
	Description              string  `gorm:"type:text"`
	EstimatedDurationMinutes int
	Exercises                ExerciseList `gorm:"serializer:json"`
}
