package repository

import (
	"github.com/gymtrackpage/hybridx/internal/models"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	FindActiveByUserID(userID uint) (*models.UserProgress, error)
	Create(progress *models.UserProgress) (*models.UserProgress, error)
	// UpdateFields применяет частичное обновление активной записи,
	// только если version совпадает. Возвращает число затронутых строк:
	// 0 означает проигранную гонку с другим писателем.
	UpdateFields(userID uint, version int, fields map[string]interface{}) (int64, error)
}

type progressRepo struct {
	db *gorm.DB
}

func NewProgressRepo(db *gorm.DB) ProgressRepository {
	return &progressRepo{db: db}
}

func (r *progressRepo) FindActiveByUserID(userID uint) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.db.Where("user_id = ? AND is_active = ?", userID, true).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepo) Create(progress *models.UserProgress) (*models.UserProgress, error) {
	err := r.db.Create(progress).Error
	return progress, err
}

func (r *progressRepo) UpdateFields(userID uint, version int, fields map[string]interface{}) (int64, error) {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["version"] = version + 1

	res := r.db.Model(&models.UserProgress{}).
		Where("user_id = ? AND is_active = ? AND version = ?", userID, true, version).
		Updates(updates)
	return res.RowsAffected, res.Error
}
