package service

import (
	"fmt"

	"github.com/gymtrackpage/hybridx/internal/models"
	"github.com/gymtrackpage/hybridx/internal/repository"
)

type UserService struct {
	users    repository.UserRepository
	programs repository.ProgramRepository
}

func NewUserService(users repository.UserRepository, programs repository.ProgramRepository) *UserService {
	return &UserService{users: users, programs: programs}
}

// CreateUser - создать пользователя
func (s *UserService) CreateUser(dto CreateUserDTO) (*models.User, error) {
	if dto.Email == "" {
		return nil, fmt.Errorf("email не может быть пустым")
	}
	user := &models.User{
		Name:  dto.Name,
		Email: dto.Email,
		Role:  dto.Role,
	}
	return s.users.Create(user)
}

// GetUserByID - получить пользователя
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	if id == 0 {
		return nil, fmt.Errorf("неверный ID")
	}
	return s.users.FindByID(id)
}

// AssignProgram назначает пользователю программу. Сброс прогресса при
// смене программы делает резолвер при следующем обращении.
func (s *UserService) AssignProgram(userID uint, dto AssignProgramDTO) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("пользователь не найден: %w", err)
	}
	if _, err := s.programs.FindByID(dto.ProgramID); err != nil {
		return nil, fmt.Errorf("программа не найдена: %w", err)
	}

	programID := dto.ProgramID
	user.ProgramID = &programID
	user.EventDate = dto.EventDate

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetAllUsers - все пользователи
func (s *UserService) GetAllUsers() ([]*models.User, error) {
	return s.users.FindAll()
}

// GetUsersCount - количество пользователей
func (s *UserService) GetUsersCount() (int64, error) {
	return s.users.Count()
}
