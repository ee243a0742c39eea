package service

import (
	"catalog-service/internal/entity"
	"catalog-service/internal/repository"
	"context"
	"errors"
)

type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser creates a new user. A taken username surfaces as
// repository.ErrUsernameExists, not as an infrastructure failure.
func (s *UserService) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if !errors.Is(err, repository.ErrUsernameExists) {
			logger.Error().Err(err).Msg("Error creating user")
		}
		return nil, err
	}

	return created, nil
}

// GetUsers retrieves all users.
func (s *UserService) GetUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.GetUsers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting users")
		return nil, err
	}

	return users, nil
}

// DeleteUserByID deletes a user by ID.
func (s *UserService) DeleteUserByID(ctx context.Context, id int) error {
	err := s.userRepo.DeleteUserByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting user %d", id)
		return err
	}

	return nil
}
