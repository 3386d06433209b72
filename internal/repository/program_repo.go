package repository

import (
	"github.com/gymtrackpage/hybridx/internal/models"
	"gorm.io/gorm"
)

type ProgramRepository interface {
	Create(program *models.Program) (*models.Program, error)
	FindAll() ([]*models.Program, error)
	FindByID(id uint) (*models.Program, error)
	Update(program *models.Program) error
	Delete(id uint) error
}

type programRepo struct {
	db *gorm.DB
}

func NewProgramRepo(db *gorm.DB) ProgramRepository {
	return &programRepo{db: db}
}

func (r *programRepo) Create(program *models.Program) (*models.Program, error) {
	err := r.db.Create(program).Error
	return program, err
}

func (r *programRepo) FindAll() ([]*models.Program, error) {
	var programs []*models.Program
	err := r.db.Preload("Category").Find(&programs).Error
	return programs, err
}

func (r *programRepo) FindByID(id uint) (*models.Program, error) {
	var program models.Program
	err := r.db.Preload("Category").First(&program, id).Error
	return &program, err
}

func (r *programRepo) Update(program *models.Program) error {
	return r.db.Save(program).Error
}

func (r *programRepo) Delete(id uint) error {
	return r.db.Delete(&models.Program{}, id).Error
}
