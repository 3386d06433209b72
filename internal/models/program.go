package models

import "gorm.io/gorm"

type Program struct {
	gorm.Model
	Name             string   `gorm:"type:varchar(100);not null"`
	Description      string   `gorm:"type:text"`
	Difficulty       string   `gorm:"type:varchar(50)"`
	DurationWeeks    int      `gorm:"not null"` // длительность в неделях
	SessionsPerWeek  int      `gorm:"not null;default:6"`
	CategoryID       *uint    // связь с Category
	Category         Category `gorm:"foreignKey:CategoryID"`
	TargetEventWeeks *int     // для программ, рассчитанных на событие (забег, соревнование)
}
