package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domainErrors "github.com/mindxandria/library-backend/internal/domain/errors"
	"github.com/mindxandria/library-backend/internal/domain/model"
)

// PostgresTokenRepo persists refresh tokens. A partial unique index on
// (user_id) over live rows backs the one-active-token-per-user invariant;
// the transactions below are the only synchronization, so the store behaves
// the same across multiple processes.
type PostgresTokenRepo struct {
	db *gorm.DB
}

func NewPostgresTokenRepo(db *gorm.DB) *PostgresTokenRepo {
	return &PostgresTokenRepo{db: db}
}

// Save supersedes any live token of the owning user with the new row.
// Delete-then-insert runs as one transaction: a cancelled caller never leaves
// the user with zero or two live tokens.
func (p *PostgresTokenRepo) Save(ctx context.Context, token *model.RefreshToken) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).Delete(&model.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
	if err != nil {
		return domainErrors.WrapStorage(err, "SaveRefreshToken")
	}
	return nil
}

func (p *PostgresTokenRepo) FindByToken(ctx context.Context, raw string) (*model.RefreshToken, error) {
	var t model.RefreshToken
	res := p.db.WithContext(ctx).Preload("User").Where("token = ?", raw).First(&t)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domainErrors.ErrRefreshTokenNotFound
	}
	if err := res.Error; err != nil {
		return nil, domainErrors.WrapStorage(err, "FindByToken")
	}
	return &t, nil
}

// ConsumeAndVerify resolves raw to its owner. Expired rows are purged on
// touch; there is no background sweep. A successful call does not delete the
// row — rotation happens when the caller stores a replacement.
func (p *PostgresTokenRepo) ConsumeAndVerify(ctx context.Context, raw string) (model.User, error) {
	t, err := p.FindByToken(ctx, raw)
	if err != nil {
		return model.User{}, err
	}

	if t.Expired(time.Now()) {
		// hard delete: a soft-deleted stale row would still occupy the token
		// uniqueness slot for nothing
		if err := p.db.WithContext(ctx).Unscoped().Where("token = ?", raw).Delete(&model.RefreshToken{}).Error; err != nil {
			return model.User{}, domainErrors.WrapStorage(err, "ConsumeAndVerify")
		}
		return model.User{}, domainErrors.ErrRefreshTokenExpired
	}

	return t.User, nil
}

// Rotate replaces oldRaw with next in one transaction. The delete of the old
// row serializes concurrent refreshes of the same token: only the caller
// whose delete affected a row gets to insert the replacement, every other
// caller fails with ErrRefreshTokenNotFound.
func (p *PostgresTokenRepo) Rotate(ctx context.Context, oldRaw string, next *model.RefreshToken) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("token = ?", oldRaw).Delete(&model.RefreshToken{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domainErrors.ErrRefreshTokenNotFound
		}

		// clear anything else still occupying the user's slot before insert
		if err := tx.Where("user_id = ?", next.UserID).Delete(&model.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(next).Error
	})
	if errors.Is(err, domainErrors.ErrRefreshTokenNotFound) {
		return domainErrors.ErrRefreshTokenNotFound
	}
	if err != nil {
		return domainErrors.WrapStorage(err, "RotateRefreshToken")
	}
	return nil
}

func (p *PostgresTokenRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if err := p.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshToken{}).Error; err != nil {
		return domainErrors.WrapStorage(err, "DeleteByUserID")
	}
	return nil
}
