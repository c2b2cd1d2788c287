package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("catalog item not found")

type BookFilters struct {
	Category string
	Genre    string
	Search   string
}

type BookRepository interface {
	List(ctx context.Context, f BookFilters) ([]Book, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
}

type GameRepository interface {
	List(ctx context.Context) ([]Game, error)
	GetByID(ctx context.Context, id int64) (*Game, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) List(ctx context.Context, f BookFilters) ([]Book, error) {
	q := r.db.WithContext(ctx).Model(&Book{})

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Genre != "" {
		q = q.Where("genre LIKE ?", "%"+f.Genre+"%")
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR author LIKE ? OR description LIKE ?", like, like, like)
	}

	var rows []Book
	if err := q.Order("title").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*Book, error) {
	var b Book
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) List(ctx context.Context) ([]Game, error) {
	var rows []Game
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gameRepository) GetByID(ctx context.Context, id int64) (*Game, error) {
	var g Game
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}
