package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string
	Email     string `gorm:"uniqueIndex"`
	Role      string `gorm:"default:'user'"`
	IsAdmin   bool
	ProgramID *uint      // текущая назначенная программа
	Program   *Program   `gorm:"foreignKey:ProgramID"`
	EventDate *time.Time // дата целевого события (опционально)
}
