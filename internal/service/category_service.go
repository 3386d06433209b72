package service

import (
	"fmt"

	"github.com/gymtrackpage/hybridx/internal/models"
	"github.com/gymtrackpage/hybridx/internal/repository"
)

type CategoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CreateCategory - создать категорию
func (s *CategoryService) CreateCategory(dto CreateCategoryDTO) (*models.Category, error) {
	if dto.Name == "" {
		return nil, fmt.Errorf("название категории не может быть пустым")
	}
	return s.repo.Create(&models.Category{
		Name:        dto.Name,
		Description: dto.Description,
		Type:        dto.Type,
	})
}

// ListCategories - список категорий
func (s *CategoryService) ListCategories() ([]*models.Category, error) {
	return s.repo.FindAll()
}
