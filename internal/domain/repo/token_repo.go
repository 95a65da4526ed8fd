package repo

import (
	"context"

	"github.com/mindxandria/library-backend/internal/domain/model"
)

// TokenRepo persists at most one live refresh token per user. The store's
// transactional isolation is the sole synchronization mechanism: no caller
// holds an in-process lock around these operations.
type TokenRepo interface {
	// Save atomically supersedes any live token of token.UserID with the new
	// row. Used on the login path.
	Save(ctx context.Context, token *model.RefreshToken) error

	// FindByToken resolves a live row by its opaque token string.
	// Returns ErrRefreshTokenNotFound on a miss.
	FindByToken(ctx context.Context, raw string) (*model.RefreshToken, error)

	// ConsumeAndVerify resolves raw to its owner. A missing row fails with
	// ErrRefreshTokenNotFound. An expired row is purged as a side effect and
	// fails with ErrRefreshTokenExpired. On success the row is NOT deleted;
	// rotation happens when the caller issues a replacement via Rotate.
	ConsumeAndVerify(ctx context.Context, raw string) (model.User, error)

	// Rotate deletes the row matching oldRaw and inserts next in one
	// transaction. If oldRaw no longer matches a row — for instance because a
	// concurrent refresh already rotated it — the whole operation fails with
	// ErrRefreshTokenNotFound and next is not inserted.
	Rotate(ctx context.Context, oldRaw string, next *model.RefreshToken) error

	DeleteByUserID(ctx context.Context, userID string) error
}
