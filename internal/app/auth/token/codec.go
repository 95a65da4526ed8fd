package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainErrors "github.com/mindxandria/library-backend/internal/domain/errors"
)

// Codec signs and verifies short-lived access tokens. It is stateless: a
// token's validity is fully determined by its HMAC-SHA512 signature and its
// expiry claim, so nothing is ever stored or looked up.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose subject is the user's email, valid from now
// until now + the configured TTL.
func (c *Codec) Issue(subject string) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(c.secret)
	if err != nil {
		return "", domainErrors.WrapStorage(err, "sign access token")
	}
	return signed, nil
}

// Verify recomputes the signature over the received header and payload and
// rejects on mismatch before inspecting any claim. Expiry is checked with the
// same clock as issuance and no leeway.
func (c *Codec) Verify(raw string) (string, error) {
	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS512.Alg() {
			return nil, domainErrors.ErrInvalidSignature
		}
		return c.secret, nil
	})

	switch {
	case err == nil && parsed.Valid:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", domainErrors.ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", domainErrors.ErrTokenExpired
	default:
		return "", domainErrors.ErrInvalidSignature
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domainErrors.ErrInvalidSignature
	}
	return claims.Subject, nil
}
