package cafe

import (
	"context"
	"sync"
	"time"

	"aacorner/internal/domain/cafe"
	"aacorner/internal/pkg/timeutil"

	"github.com/google/uuid"
)

// Fixed demo policies; the cafe is not a configurable reservation engine.
const (
	OpenMin         = 9 * 60  // 09:00
	CloseMin        = 21 * 60 // 21:00
	SlotStepMin     = 30
	SlotDurationMin = 60
	SeatCapacity    = 10

	MinDurationMin = 30
	MaxDurationMin = 240
)

const dateLayout = "2006-01-02"

type EventPublisher interface {
	Publish(eventType string, payload any)
}

type Service struct {
	reservations cafe.ReservationRepository
	events       EventPublisher

	// locks serializes the capacity check-then-insert per date so two
	// concurrent requests cannot both pass a stale remaining count.
	locks dateLocks
}

func NewService(reservations cafe.ReservationRepository, events EventPublisher) *Service {
	return &Service{reservations: reservations, events: events}
}

// Availability walks the slot grid for a date and reports remaining seats
// per slot. Closed and members-only days yield no slots; the policy label
// tells the caller why.
func (s *Service) Availability(ctx context.Context, dateStr string) (*AvailabilityResponse, error) {
	day, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, cafe.ErrValidation
	}

	resp := &AvailabilityResponse{
		Date:   dateStr,
		Policy: Classify(day),
		Slots:  []Slot{},
	}
	if resp.Policy != DayOpen {
		return resp, nil
	}

	for start := OpenMin; start <= CloseMin-SlotDurationMin; start += SlotStepMin {
		booked, err := s.reservations.BookedSeats(ctx, dateStr, start, SlotDurationMin)
		if err != nil {
			return nil, err
		}
		remaining := SeatCapacity - booked
		if remaining < 0 {
			remaining = 0
		}
		resp.Slots = append(resp.Slots, Slot{
			Time:      timeutil.FormatClock(start),
			Remaining: remaining,
		})
	}
	return resp, nil
}

func (s *Service) CreateReservation(ctx context.Context, userID int64, req CreateReservationRequest) (*cafe.Reservation, error) {
	if req.PartySize < 1 {
		return nil, cafe.ErrValidation
	}
	if req.DurationMin < MinDurationMin || req.DurationMin > MaxDurationMin {
		return nil, cafe.ErrValidation
	}
	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, cafe.ErrValidation
	}
	if !timeutil.IsClock(req.Time) {
		return nil, cafe.ErrValidation
	}

	switch Classify(day) {
	case DayClosed:
		return nil, cafe.ErrClosedDay
	case DayMembersOnly:
		// Demo policy: Saturdays block booking for everyone; there is no
		// separate membership concept behind the label.
		return nil, cafe.ErrMembersOnly
	}

	r := &cafe.Reservation{
		Ref:         uuid.NewString(),
		UserID:      userID,
		Date:        req.Date,
		StartMin:    timeutil.ParseClock(req.Time),
		DurationMin: req.DurationMin,
		PartySize:   req.PartySize,
		Note:        req.Note,
		Status:      cafe.StatusConfirmed,
		CreatedAt:   time.Now().UTC(),
	}

	unlock := s.locks.lock(req.Date)
	err = s.reservations.Create(ctx, r, SeatCapacity)
	unlock()
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("reservation.created", r)
	}
	return r, nil
}

func (s *Service) CancelReservation(ctx context.Context, reservationID, userID int64) (*cafe.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if r.UserID != userID {
		return nil, cafe.ErrForbidden
	}
	if r.Status == cafe.StatusCancelled {
		return nil, cafe.ErrInvalidState
	}

	if err := s.reservations.Cancel(ctx, reservationID); err != nil {
		return nil, err
	}

	r, err = s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.Publish("reservation.cancelled", r)
	}
	return r, nil
}

func (s *Service) MyReservations(ctx context.Context, userID int64) ([]cafe.Reservation, error) {
	return s.reservations.ListByUser(ctx, userID)
}

// dateLocks hands out one mutex per date key. Entries are never evicted;
// the working set is bounded by the handful of dates people book.
type dateLocks struct {
	mu    sync.Mutex
	byDay map[string]*sync.Mutex
}

func (d *dateLocks) lock(date string) (unlock func()) {
	d.mu.Lock()
	if d.byDay == nil {
		d.byDay = make(map[string]*sync.Mutex)
	}
	m, ok := d.byDay[date]
	if !ok {
		m = &sync.Mutex{}
		d.byDay[date] = m
	}
	d.mu.Unlock()

	m.Lock()
	return m.Unlock
}
