package users

import (
	"context"

	"github.com/mindxandria/library-backend/internal/adapters/transport/http/dto"
	"github.com/mindxandria/library-backend/internal/domain/model"
	"github.com/mindxandria/library-backend/internal/domain/repo"
)

type Service interface {
	// ProfileByEmail resolves the verified identity from the request context
	// to the caller's profile.
	ProfileByEmail(ctx context.Context, email string) (dto.UserResponseDTO, error)

	ByEmail(ctx context.Context, email string) (model.User, error)

	// DeleteByEmail removes the caller's account. The repo cascades to the
	// account's books and refresh token in one transaction.
	DeleteByEmail(ctx context.Context, email string) error
}

type userService struct {
	users repo.UserRepo
}

func New(users repo.UserRepo) Service {
	return &userService{users: users}
}

func (s *userService) ProfileByEmail(ctx context.Context, email string) (dto.UserResponseDTO, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return dto.UserResponseDTO{}, err
	}
	return dto.UserResponseDTO{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (s *userService) ByEmail(ctx context.Context, email string) (model.User, error) {
	return s.users.GetUserByEmail(ctx, email)
}

func (s *userService) DeleteByEmail(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.users.DeleteUser(ctx, user.ID)
}
