package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	domainErrors "github.com/mindxandria/library-backend/internal/domain/errors"
	"github.com/mindxandria/library-backend/internal/domain/model"
)

const uniqueViolation = "23505"

type PostgresUserRepo struct {
	db *gorm.DB
}

func NewPostgresUserRepo(db *gorm.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

func (p *PostgresUserRepo) CreateUser(ctx context.Context, user model.User) (string, error) {
	if err := p.db.WithContext(ctx).Create(&user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", domainErrors.ErrAlreadyExists
		}
		return "", domainErrors.WrapStorage(err, "CreateUser")
	}
	return user.ID, nil
}

func (p *PostgresUserRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	res := p.db.WithContext(ctx).Where("email = ?", email).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, domainErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, domainErrors.WrapStorage(err, "GetUserByEmail")
	}
	return u, nil
}

func (p *PostgresUserRepo) GetUserByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	res := p.db.WithContext(ctx).Where("id = ?", id).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, domainErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, domainErrors.WrapStorage(err, "GetUserByID")
	}
	return u, nil
}

// DeleteUser removes the user together with everything hanging off the
// account. Books and the refresh token go in the same transaction so a
// partially deleted account can never authenticate or leak rows.
func (p *PostgresUserRepo) DeleteUser(ctx context.Context, id string) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.RefreshToken{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Book{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
	if errors.Is(err, domainErrors.ErrNotFound) {
		return domainErrors.ErrNotFound
	}
	if err != nil {
		return domainErrors.WrapStorage(err, "DeleteUser")
	}
	return nil
}
