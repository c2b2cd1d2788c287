package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store holds one cart per user across requests.
type Store interface {
	Load(ctx context.Context, userID int64) (*Cart, error)
	Save(ctx context.Context, userID int64, c *Cart) error
	Clear(ctx context.Context, userID int64) error
}

type cartSession struct {
	UserID    int64     `gorm:"column:user_id;primaryKey"`
	ItemsJSON string    `gorm:"column:items_json;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (cartSession) TableName() string { return "cart_sessions" }

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Load returns the user's cart, or an empty cart if none was saved yet.
func (s *gormStore) Load(ctx context.Context, userID int64) (*Cart, error) {
	var row cartSession
	err := s.db.WithContext(ctx).First(&row, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &Cart{}, nil
		}
		return nil, err
	}

	var c Cart
	if err := json.Unmarshal([]byte(row.ItemsJSON), &c); err != nil {
		// A corrupt row should not lock the user out of their cart.
		return &Cart{}, nil
	}
	return &c, nil
}

func (s *gormStore) Save(ctx context.Context, userID int64, c *Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}

	row := cartSession{
		UserID:    userID,
		ItemsJSON: string(raw),
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"items_json", "updated_at"}),
		}).
		Create(&row).Error
}

func (s *gormStore) Clear(ctx context.Context, userID int64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&cartSession{}).Error
}

// SessionModel exposes the gorm model for migration.
func SessionModel() any { return &cartSession{} }
