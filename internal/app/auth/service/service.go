package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mindxandria/library-backend/internal/adapters/transport/http/dto"
	"github.com/mindxandria/library-backend/internal/app/auth/token"
	domainErrors "github.com/mindxandria/library-backend/internal/domain/errors"
	"github.com/mindxandria/library-backend/internal/domain/model"
	"github.com/mindxandria/library-backend/internal/domain/repo"
)

var argonParams = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

type Service interface {
	Register(context.Context, dto.RegisterDTO) error
	Login(context.Context, dto.LoginDTO) (model.TokenPair, error)
	Refresh(context.Context, dto.RefreshDTO) (model.TokenPair, error)
	Logout(context.Context, dto.RefreshDTO) error
}

type authService struct {
	userRepo   repo.UserRepo
	tokenRepo  repo.TokenRepo
	codec      *token.Codec
	refreshTTL time.Duration
	v          *validator.Validate
}

func New(
	ur repo.UserRepo,
	tr repo.TokenRepo,
	codec *token.Codec,
	refreshTTL time.Duration,
	v *validator.Validate,
) Service {
	return &authService{
		userRepo: ur, tokenRepo: tr, codec: codec, refreshTTL: refreshTTL, v: v,
	}
}

func (a *authService) Register(ctx context.Context, in dto.RegisterDTO) error {
	if err := a.v.Struct(in); err != nil {
		return domainErrors.NewInvalidArgument(err.Error())
	}

	passwordHash, err := argon2id.CreateHash(in.Password, argonParams)
	if err != nil {
		return domainErrors.WrapStorage(err, "Register")
	}

	user := model.User{
		Audit:        model.Audit{ID: uuid.NewString()},
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: passwordHash,
	}
	if _, err = a.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return domainErrors.ErrAlreadyExists
		}
		return domainErrors.WrapStorage(err, "Register")
	}
	return nil
}

// Login authenticates the credentials and issues a fresh token pair. A
// missing user and a wrong password are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, in dto.LoginDTO) (model.TokenPair, error) {
	if err := a.v.Struct(in); err != nil {
		return model.TokenPair{}, domainErrors.NewInvalidArgument(err.Error())
	}

	user, err := a.userRepo.GetUserByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return model.TokenPair{}, domainErrors.ErrAuthenticationFailed
	case err != nil:
		return model.TokenPair{}, domainErrors.WrapStorage(err, "Login")
	}

	ok, err := argon2id.ComparePasswordAndHash(in.Password, user.PasswordHash)
	if err != nil {
		return model.TokenPair{}, domainErrors.WrapStorage(err, "Login")
	}
	if !ok {
		return model.TokenPair{}, domainErrors.ErrAuthenticationFailed
	}

	accessToken, err := a.codec.Issue(user.Email)
	if err != nil {
		return model.TokenPair{}, err
	}

	next, err := a.newRefreshToken(user.ID)
	if err != nil {
		return model.TokenPair{}, err
	}
	if err := a.tokenRepo.Save(ctx, next); err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{AccessToken: accessToken, RefreshToken: next.Token}, nil
}

// Refresh exchanges a live refresh token for a new pair. The presented token
// is superseded in the same transaction that stores its replacement, so it
// becomes unusable the moment the call succeeds.
func (a *authService) Refresh(ctx context.Context, in dto.RefreshDTO) (model.TokenPair, error) {
	if err := a.v.Struct(in); err != nil {
		return model.TokenPair{}, domainErrors.NewInvalidArgument(err.Error())
	}

	owner, err := a.tokenRepo.ConsumeAndVerify(ctx, in.RefreshToken)
	if err != nil {
		return model.TokenPair{}, err
	}

	accessToken, err := a.codec.Issue(owner.Email)
	if err != nil {
		return model.TokenPair{}, err
	}

	next, err := a.newRefreshToken(owner.ID)
	if err != nil {
		return model.TokenPair{}, err
	}
	if err := a.tokenRepo.Rotate(ctx, in.RefreshToken, next); err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{AccessToken: accessToken, RefreshToken: next.Token}, nil
}

func (a *authService) Logout(ctx context.Context, in dto.RefreshDTO) error {
	if err := a.v.Struct(in); err != nil {
		return domainErrors.NewInvalidArgument(err.Error())
	}

	stored, err := a.tokenRepo.FindByToken(ctx, in.RefreshToken)
	if errors.Is(err, domainErrors.ErrRefreshTokenNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return a.tokenRepo.DeleteByUserID(ctx, stored.UserID)
}

func (a *authService) newRefreshToken(userID string) (*model.RefreshToken, error) {
	opaque, err := newOpaqueToken()
	if err != nil {
		return nil, domainErrors.WrapStorage(err, "generate refresh token")
	}
	return &model.RefreshToken{
		Audit:     model.Audit{ID: uuid.NewString()},
		Token:     opaque,
		ExpiresAt: time.Now().Add(a.refreshTTL),
		UserID:    userID,
	}, nil
}

// newOpaqueToken returns a 48-byte random string, URL-safe encoded. The value
// carries no user data; it is only ever matched against the stored row.
func newOpaqueToken() (string, error) {
	raw := make([]byte, 48)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
