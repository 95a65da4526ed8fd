package repo

import (
	"context"

	"github.com/mindxandria/library-backend/internal/domain/model"
)

type UserRepo interface {
	CreateUser(ctx context.Context, u model.User) (string, error)

	GetUserByEmail(ctx context.Context, email string) (model.User, error)

	GetUserByID(ctx context.Context, id string) (model.User, error)

	// DeleteUser soft-deletes the user together with their refresh token and
	// books in a single transaction.
	DeleteUser(ctx context.Context, id string) error
}
