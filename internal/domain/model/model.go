package model

import (
	"time"

	"gorm.io/gorm"
)

// Audit is the base envelope embedded by every persisted entity.
// DeletedAt drives gorm's soft-delete scoping: deleted rows are invisible
// to normal queries and only reachable through Unscoped sessions.
type Audit struct {
	ID        string         `gorm:"primaryKey;size:36"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (a Audit) IsDeleted() bool {
	return a.DeletedAt.Valid
}

type User struct {
	Audit
	Name         string `gorm:"size:50"`
	Email        string `gorm:"size:191;not null"`
	PasswordHash string `gorm:"size:191;not null"`
}

type Book struct {
	Audit
	Name             string   `gorm:"size:191;not null"`
	ShortDescription string   `gorm:"size:500"`
	LongDescription  string   `gorm:"size:3000"`
	GenreTypes       []string `gorm:"type:text;serializer:json"`
	CoverImageName   string   `gorm:"size:191"`
	UserID           string   `gorm:"size:36;not null;index"`
}

// RefreshToken holds the single long-lived credential of its owning user.
// Uniqueness of (user_id) among live rows is enforced by a partial index,
// uniqueness of the opaque token string by a plain unique index.
type RefreshToken struct {
	Audit
	Token     string    `gorm:"size:128;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	UserID    string    `gorm:"size:36;not null"`
	User      User      `gorm:"foreignKey:UserID"`
}

func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// TokenPair is what a successful login or refresh hands back to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
