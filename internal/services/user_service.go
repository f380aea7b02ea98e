package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"showroom_manager/internal/apperrors"
	"showroom_manager/internal/logger"
	"showroom_manager/internal/models"
	"showroom_manager/internal/repository"
)

type UserService interface {
	CreateUser(user *models.User, password string) error
	Authenticate(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

type userService struct {
	repos *repository.Repositories
}

func NewUserService(repos *repository.Repositories) UserService {
	return &userService{repos: repos}
}

func (s *userService) CreateUser(user *models.User, password string) error {
	if user.Email == "" || password == "" {
		return apperrors.Validation("Email and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Store("Failed to hash password", err)
	}
	user.Password = string(hashedPassword)

	if err := s.repos.Users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Duplicate("Duplicate entry: email already exists")
		}
		logger.LogError("users", "CreateUser", err, nil)
		return apperrors.Store("Failed to create user", err)
	}
	return nil
}

func (s *userService) Authenticate(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.Validation("Email and password are required")
	}

	user, err := s.repos.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Invalid email or password")
		}
		logger.LogError("users", "Authenticate", err, nil)
		return nil, apperrors.Store("Failed to fetch user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.NotFound("Invalid email or password")
	}

	return user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.repos.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		logger.LogError("users", "GetUserByID", err, nil)
		return nil, apperrors.Store("Failed to fetch user", err)
	}
	return user, nil
}
