package report

import (
	"context"
	"time"

	"aacorner/internal/domain/order"

	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// SalesRow is one day of aggregated checkout revenue.
type SalesRow struct {
	Day     string  `gorm:"column:day" json:"day"`
	Orders  int64   `gorm:"column:orders" json:"orders"`
	Revenue float64 `gorm:"column:revenue" json:"revenue"`
}

// ReservationStats counts cafe reservations by status.
type ReservationStats struct {
	Total      int64 `json:"total"`
	Confirmed  int64 `json:"confirmed"`
	Cancelled  int64 `json:"cancelled"`
	TotalSeats int64 `json:"total_seats"`
}

// SalesByDay aggregates purchase history into per-day order counts and
// revenue for the last `days` days, newest first.
func (s *Service) SalesByDay(ctx context.Context, days int) ([]SalesRow, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	// Day truncation has no portable spelling between the two dialects
	// the connection layer supports.
	dayExpr := "strftime('%Y-%m-%d', purchased_at)"
	if s.db.Dialector.Name() == "postgres" {
		dayExpr = "to_char(purchased_at, 'YYYY-MM-DD')"
	}

	var rows []SalesRow
	err := s.db.WithContext(ctx).
		Table("purchase_history").
		Select(dayExpr+" AS day, COUNT(*) AS orders, SUM(total_amount) AS revenue").
		Where("purchased_at >= ?", since).
		Group("day").
		Order("day DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []SalesRow{}
	}
	return rows, nil
}

func (s *Service) ReservationStats(ctx context.Context) (*ReservationStats, error) {
	stats := &ReservationStats{}

	type statusRow struct {
		Status string `gorm:"column:status"`
		N      int64  `gorm:"column:n"`
		Seats  int64  `gorm:"column:seats"`
	}
	var byStatus []statusRow
	err := s.db.WithContext(ctx).
		Table("cafe_reservations").
		Select("status, COUNT(*) AS n, COALESCE(SUM(party_size), 0) AS seats").
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, err
	}

	for _, r := range byStatus {
		stats.Total += r.N
		switch r.Status {
		case "confirmed":
			stats.Confirmed = r.N
			stats.TotalSeats += r.Seats
		case "cancelled":
			stats.Cancelled = r.N
		}
	}
	return stats, nil
}

// RecentOrders returns the latest checkouts across all users.
func (s *Service) RecentOrders(ctx context.Context, limit int) ([]order.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var rows []order.Order
	err := s.db.WithContext(ctx).
		Order("purchased_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []order.Order{}
	}
	return rows, nil
}
