package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProgress — позиция пользователя в сетке (неделя, день) программы.
// У пользователя не больше одной активной записи.
type UserProgress struct {
	gorm.Model
	UserID            uint    `gorm:"not null;index"`
	User              User    `gorm:"foreignKey:UserID"`
	ProgramID         uint    `gorm:"not null"`
	Program           Program `gorm:"foreignKey:ProgramID"`
	CurrentWeek       int     `gorm:"not null;default:1"`
	CurrentDay        int     `gorm:"not null;default:1"`
	StartDate         time.Time
	CompletedWorkouts int
	TotalWorkouts     int
	IsActive          bool `gorm:"default:true"`
	Version           int  `gorm:"not null;default:0"` // для обнаружения конкурентных записей
}
