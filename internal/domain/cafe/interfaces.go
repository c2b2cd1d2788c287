package cafe

import "context"

// ReservationRepository defines storage operations for cafe reservations.
type ReservationRepository interface {
	// BookedSeats sums party_size over confirmed reservations on date whose
	// [start, start+duration) interval overlaps the given one.
	BookedSeats(ctx context.Context, date string, startMin, durationMin int) (int, error)

	// Create re-checks seat capacity for the reservation's interval and
	// inserts in the same transaction. Returns *CapacityError when the
	// party does not fit.
	Create(ctx context.Context, r *Reservation, capacity int) error

	GetByID(ctx context.Context, id int64) (*Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]Reservation, error)
	Cancel(ctx context.Context, id int64) error
}
