package postgres

import (
	"context"
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	domainErrors "github.com/mindxandria/library-backend/internal/domain/errors"
	"github.com/mindxandria/library-backend/internal/domain/model"
	"github.com/mindxandria/library-backend/internal/domain/repo"
)

type PostgresBookRepo struct {
	db *gorm.DB
}

func NewPostgresBookRepo(db *gorm.DB) *PostgresBookRepo {
	return &PostgresBookRepo{db: db}
}

func (p *PostgresBookRepo) CreateBook(ctx context.Context, book model.Book) (string, error) {
	if err := p.db.WithContext(ctx).Create(&book).Error; err != nil {
		return "", domainErrors.WrapStorage(err, "CreateBook")
	}
	return book.ID, nil
}

func (p *PostgresBookRepo) GetBookByID(ctx context.Context, id string) (model.Book, error) {
	var b model.Book
	res := p.db.WithContext(ctx).Where("id = ?", id).First(&b)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Book{}, domainErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Book{}, domainErrors.WrapStorage(err, "GetBookByID")
	}
	return b, nil
}

func (p *PostgresBookRepo) ListByUserID(ctx context.Context, userID string) ([]model.Book, error) {
	var books []model.Book
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&books).Error
	if err != nil {
		return nil, domainErrors.WrapStorage(err, "ListByUserID")
	}
	return books, nil
}

func (p *PostgresBookRepo) UpdateBook(ctx context.Context, book model.Book) error {
	if err := p.db.WithContext(ctx).Save(&book).Error; err != nil {
		return domainErrors.WrapStorage(err, "UpdateBook")
	}
	return nil
}

func (p *PostgresBookRepo) DeleteBook(ctx context.Context, id string) error {
	res := p.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Book{})
	if res.Error != nil {
		return domainErrors.WrapStorage(res.Error, "DeleteBook")
	}
	if res.RowsAffected == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (p *PostgresBookRepo) Search(ctx context.Context, term string, offset, limit int) ([]model.Book, int64, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	base := p.db.WithContext(ctx).Model(&model.Book{}).
		Where("LOWER(name) LIKE ? OR LOWER(short_description) LIKE ?", pattern, pattern)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, domainErrors.WrapStorage(err, "SearchBooks")
	}

	var books []model.Book
	err := base.Order("name asc").Offset(offset).Limit(limit).Find(&books).Error
	if err != nil {
		return nil, 0, domainErrors.WrapStorage(err, "SearchBooks")
	}
	return books, total, nil
}

// CountByGenre tallies genres across the catalog. Genres live as a JSON list
// on each row, there is no join table to GROUP BY, so the aggregation happens
// here after a single scan.
func (p *PostgresBookRepo) CountByGenre(ctx context.Context) ([]repo.GenreStat, error) {
	var books []model.Book
	err := p.db.WithContext(ctx).Select("genre_types").Find(&books).Error
	if err != nil {
		return nil, domainErrors.WrapStorage(err, "CountByGenre")
	}

	counts := make(map[string]int64)
	for _, b := range books {
		for _, g := range b.GenreTypes {
			counts[g]++
		}
	}

	stats := make([]repo.GenreStat, 0, len(counts))
	for g, n := range counts {
		stats = append(stats, repo.GenreStat{Genre: g, Count: n})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Genre < stats[j].Genre
	})
	return stats, nil
}
