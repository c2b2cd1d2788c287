package order

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	var rows []Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
