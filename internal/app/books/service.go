package books

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mindxandria/library-backend/internal/adapters/transport/http/dto"
	domainErrors "github.com/mindxandria/library-backend/internal/domain/errors"
	"github.com/mindxandria/library-backend/internal/domain/model"
	"github.com/mindxandria/library-backend/internal/domain/repo"
)

// Service manages a user's book catalog. Every mutation is owner-scoped:
// callers can only touch books they created.
type Service interface {
	ListMine(ctx context.Context, ownerID string) ([]dto.BookResponseDTO, error)
	Create(ctx context.Context, ownerID string, in dto.BookRequestDTO) (dto.BookResponseDTO, error)
	Update(ctx context.Context, ownerID, bookID string, in dto.BookUpdateRequestDTO) (dto.BookResponseDTO, error)
	Delete(ctx context.Context, ownerID, bookID string) error
	Search(ctx context.Context, term string, page, size int) ([]dto.BookResponseDTO, int64, error)
	GenreStats(ctx context.Context) ([]repo.GenreStat, error)
}

type bookService struct {
	books repo.BookRepo
	v     *validator.Validate
}

func New(books repo.BookRepo, v *validator.Validate) Service {
	return &bookService{books: books, v: v}
}

func (s *bookService) ListMine(ctx context.Context, ownerID string) ([]dto.BookResponseDTO, error) {
	list, err := s.books.ListByUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BookResponseDTO, 0, len(list))
	for _, b := range list {
		out = append(out, mapBook(b))
	}
	return out, nil
}

func (s *bookService) Create(ctx context.Context, ownerID string, in dto.BookRequestDTO) (dto.BookResponseDTO, error) {
	if err := s.v.Struct(in); err != nil {
		return dto.BookResponseDTO{}, domainErrors.NewInvalidArgument(err.Error())
	}

	book := model.Book{
		Audit:            model.Audit{ID: uuid.NewString()},
		Name:             in.Name,
		ShortDescription: in.ShortDescription,
		LongDescription:  in.LongDescription,
		GenreTypes:       in.GenreTypes,
		UserID:           ownerID,
	}
	if _, err := s.books.CreateBook(ctx, book); err != nil {
		return dto.BookResponseDTO{}, err
	}
	return mapBook(book), nil
}

func (s *bookService) Update(ctx context.Context, ownerID, bookID string, in dto.BookUpdateRequestDTO) (dto.BookResponseDTO, error) {
	if err := s.v.Struct(in); err != nil {
		return dto.BookResponseDTO{}, domainErrors.NewInvalidArgument(err.Error())
	}

	book, err := s.ownedBook(ctx, ownerID, bookID)
	if err != nil {
		return dto.BookResponseDTO{}, err
	}

	if in.Name != nil {
		book.Name = *in.Name
	}
	if in.ShortDescription != nil {
		book.ShortDescription = *in.ShortDescription
	}
	if in.LongDescription != nil {
		book.LongDescription = *in.LongDescription
	}
	if in.CoverImageName != nil {
		book.CoverImageName = *in.CoverImageName
	}

	if err := s.books.UpdateBook(ctx, book); err != nil {
		return dto.BookResponseDTO{}, err
	}
	return mapBook(book), nil
}

func (s *bookService) Delete(ctx context.Context, ownerID, bookID string) error {
	if _, err := s.ownedBook(ctx, ownerID, bookID); err != nil {
		return err
	}
	return s.books.DeleteBook(ctx, bookID)
}

func (s *bookService) Search(ctx context.Context, term string, page, size int) ([]dto.BookResponseDTO, int64, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	list, total, err := s.books.Search(ctx, term, page*size, size)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.BookResponseDTO, 0, len(list))
	for _, b := range list {
		out = append(out, mapBook(b))
	}
	return out, total, nil
}

func (s *bookService) GenreStats(ctx context.Context) ([]repo.GenreStat, error) {
	return s.books.CountByGenre(ctx)
}

func (s *bookService) ownedBook(ctx context.Context, ownerID, bookID string) (model.Book, error) {
	book, err := s.books.GetBookByID(ctx, bookID)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return model.Book{}, domainErrors.ErrNotFound
	}
	if err != nil {
		return model.Book{}, err
	}
	if book.UserID != ownerID {
		return model.Book{}, domainErrors.ErrAccessDenied
	}
	return book, nil
}

func mapBook(b model.Book) dto.BookResponseDTO {
	return dto.BookResponseDTO{
		ID:               b.ID,
		Name:             b.Name,
		ShortDescription: b.ShortDescription,
		LongDescription:  b.LongDescription,
		GenreTypes:       b.GenreTypes,
		CoverImageName:   b.CoverImageName,
	}
}
