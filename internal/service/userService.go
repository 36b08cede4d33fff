package service

import (
	"context"
	"strings"

	repository "github.com/bookmybox/backend/internal/database/postgres"
	"github.com/bookmybox/backend/internal/entity"

	"github.com/sirupsen/logrus"
)

// RegisterUserRequest represents the data needed to register a user
type RegisterUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required,min=1,max=255"`
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) RegisterUser(ctx context.Context, req *RegisterUserRequest) (*entity.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !strings.Contains(email, "@") {
		return nil, entity.ErrInvalidEmail
	}

	user := &entity.User{
		Email: email,
		Name:  req.Name,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logrus.Infof("User registered: ID=%d, Email=%s", user.ID, user.Email)

	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
