package cafe

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE for a serialization failure under serializable isolation.
const pgSerializationFailure = "40001"

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) BookedSeats(ctx context.Context, date string, startMin, durationMin int) (int, error) {
	return bookedSeats(r.db.WithContext(ctx), date, startMin, durationMin)
}

// bookedSeats runs the overlap sum on the given handle so Create can reuse
// it inside its transaction. Two intervals overlap iff
// start1 < end2 AND end1 > start2 (half-open, back-to-back do not count).
func bookedSeats(db *gorm.DB, date string, startMin, durationMin int) (int, error) {
	var total int
	err := db.
		Model(&Reservation{}).
		Select("COALESCE(SUM(party_size), 0)").
		Where("date = ?", date).
		Where("status = ?", StatusConfirmed).
		Where("start_min < ? AND start_min + duration_min > ?", startMin+durationMin, startMin).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Create re-checks capacity and inserts in one transaction. The caller holds
// a per-date lock, so within one process the check-then-insert cannot race.
// On postgres the transaction additionally runs serializable, so a concurrent
// writer from another process makes this one fail instead of overbooking.
func (r *reservationRepository) Create(ctx context.Context, res *Reservation, capacity int) error {
	var txOpts []*sql.TxOptions
	if r.db.Dialector.Name() == "postgres" {
		txOpts = append(txOpts, &sql.TxOptions{Isolation: sql.LevelSerializable})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booked, err := bookedSeats(tx, res.Date, res.StartMin, res.DurationMin)
		if err != nil {
			return err
		}
		if booked+res.PartySize > capacity {
			remaining := capacity - booked
			if remaining < 0 {
				remaining = 0
			}
			return &CapacityError{Remaining: remaining, Capacity: capacity}
		}
		return tx.Create(res).Error
	}, txOpts...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgSerializationFailure {
			// A concurrent booking won the race; re-read and report what
			// the situation looks like now.
			booked, readErr := bookedSeats(r.db.WithContext(ctx), res.Date, res.StartMin, res.DurationMin)
			if readErr != nil {
				booked = capacity
			}
			return admissionConflict(capacity-booked, res.PartySize, capacity)
		}
		return err
	}
	return nil
}

// admissionConflict classifies a lost concurrent-create race: a capacity
// error only when the party no longer fits, a plain retryable conflict when
// seats are still free.
func admissionConflict(remaining, partySize, capacity int) error {
	if remaining < 0 {
		remaining = 0
	}
	if remaining < partySize {
		return &CapacityError{Remaining: remaining, Capacity: capacity}
	}
	return ErrConflict
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*Reservation, error) {
	var res Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID int64) ([]Reservation, error) {
	var rows []Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, start_min DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reservationRepository) Cancel(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       string(StatusCancelled),
			"cancelled_at": &now,
		}).Error
}
