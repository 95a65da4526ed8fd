package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainErrors "github.com/mindxandria/library-backend/internal/domain/errors"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestCodec_IssueVerify(t *testing.T) {
	c := NewCodec(testSecret, time.Minute)

	raw, err := c.Issue("a@b.com")
	if err != nil {
		t.Fatal(err)
	}

	subject, err := c.Verify(raw)
	if err != nil {
		t.Fatal(err)
	}
	if subject != "a@b.com" {
		t.Fatalf("want a@b.com got %s", subject)
	}
}

func TestCodec_ExpiryEqualsIssuedAtPlusTTL(t *testing.T) {
	ttl := 42 * time.Minute
	c := NewCodec(testSecret, ttl)

	raw, err := c.Issue("a@b.com")
	if err != nil {
		t.Fatal(err)
	}

	var claims jwt.RegisteredClaims
	if _, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}); err != nil {
		t.Fatal(err)
	}

	got := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if got != ttl {
		t.Fatalf("exp-iat want %v got %v", ttl, got)
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	c := NewCodec(testSecret, time.Minute)
	raw, _ := c.Issue("a@b.com")

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("want 3 segments, got %d", len(parts))
	}

	// Flip one bit at various offsets of the signature segment; every variant
	// must be rejected as a signature mismatch regardless of payload content.
	sig := []byte(parts[2])
	for i := 0; i < len(sig); i += 7 {
		mutated := append([]byte(nil), sig...)
		mutated[i] ^= 0x01
		tampered := parts[0] + "." + parts[1] + "." + string(mutated)
		if tampered == raw {
			continue
		}
		if _, err := c.Verify(tampered); !errors.Is(err, domainErrors.ErrInvalidSignature) {
			t.Fatalf("offset %d: want ErrInvalidSignature, got %v", i, err)
		}
	}
}

func TestCodec_Expired(t *testing.T) {
	c := NewCodec(testSecret, -time.Minute)
	raw, err := c.Issue("a@b.com")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Verify(raw); !errors.Is(err, domainErrors.ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	raw, _ := NewCodec("other-secret-other-secret-other!", time.Minute).Issue("a@b.com")

	c := NewCodec(testSecret, time.Minute)
	if _, err := c.Verify(raw); !errors.Is(err, domainErrors.ErrInvalidSignature) {
		t.Fatalf("want ErrInvalidSignature, got %v", err)
	}
}

func TestCodec_RejectsForeignAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "a@b.com",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}

	c := NewCodec(testSecret, time.Minute)
	if _, err := c.Verify(raw); !errors.Is(err, domainErrors.ErrInvalidSignature) {
		t.Fatalf("want ErrInvalidSignature, got %v", err)
	}
}

func TestCodec_Garbage(t *testing.T) {
	c := NewCodec(testSecret, time.Minute)
	for _, raw := range []string{"", "bad", "a.b", "a.b.c.d"} {
		if _, err := c.Verify(raw); !errors.Is(err, domainErrors.ErrInvalidSignature) {
			t.Fatalf("%q: want ErrInvalidSignature, got %v", raw, err)
		}
	}
}
