package errors

import (
	"errors"
	"fmt"
)

var (
	// Credential lifecycle failures, all permanent for the given input.
	ErrAuthenticationFailed = errors.New("invalid email or password")
	ErrTokenExpired         = errors.New("token expired")
	ErrInvalidSignature     = errors.New("invalid token signature")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")

	// ErrStorage marks transactional or infrastructure faults. It is the only
	// kind a caller may treat as transient.
	ErrStorage = errors.New("storage failure")

	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrAccessDenied    = errors.New("access denied")
)

func NewInvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

func WrapStorage(err error, context string) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, context, err)
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}
