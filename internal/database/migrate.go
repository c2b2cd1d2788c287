package database

import (
	"fmt"
	"log"

	"aacorner/internal/domain"
	"aacorner/internal/domain/cafe"
	"aacorner/internal/domain/catalog"
	"aacorner/internal/domain/order"

	cartdomain "aacorner/internal/domain/cart"

	"gorm.io/gorm"
)

type schemaMigration struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"size:128"`
	AppliedAt int64  `gorm:"autoCreateTime"`
}

func (schemaMigration) TableName() string { return "schema_migrations" }

type migration struct {
	id   int
	name string
	run  func(tx *gorm.DB) error
}

// migrations are applied once, in order, at startup. New schema changes get
// a new entry here instead of inline DDL in request handlers.
var migrations = []migration{
	{
		id:   1,
		name: "base tables",
		run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&domain.User{},
				&catalog.Book{},
				&catalog.Game{},
				&cafe.Reservation{},
				&order.Order{},
				cartdomain.SessionModel(),
			)
		},
	},
}

// Migrate brings the schema up to date. Safe to call on every boot.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("migrate bookkeeping table: %w", err)
	}

	for _, m := range migrations {
		var cnt int64
		if err := db.Model(&schemaMigration{}).Where("id = ?", m.id).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			continue
		}

		log.Printf("applying migration %d: %s", m.id, m.name)
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.run(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{ID: m.id, Name: m.name}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.id, m.name, err)
		}
	}
	return nil
}
