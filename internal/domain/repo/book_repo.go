package repo

import (
	"context"

	"github.com/mindxandria/library-backend/internal/domain/model"
)

// GenreStat is one row of the genre aggregation.
type GenreStat struct {
	Genre string `json:"genre"`
	Count int64  `json:"count"`
}

type BookRepo interface {
	CreateBook(ctx context.Context, b model.Book) (string, error)

	GetBookByID(ctx context.Context, id string) (model.Book, error)

	ListByUserID(ctx context.Context, userID string) ([]model.Book, error)

	UpdateBook(ctx context.Context, b model.Book) error

	DeleteBook(ctx context.Context, id string) error

	// Search matches term case-insensitively against name and short
	// description, paged. Returns the page and the total match count.
	Search(ctx context.Context, term string, offset, limit int) ([]model.Book, int64, error)

	CountByGenre(ctx context.Context) ([]GenreStat, error)
}
