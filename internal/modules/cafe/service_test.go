package cafe

import (
	"context"
	"errors"
	"testing"
	"time"

	"aacorner/internal/domain/cafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) BookedSeats(ctx context.Context, date string, startMin, durationMin int) (int, error) {
	args := m.Called(ctx, date, startMin, durationMin)
	return args.Int(0), args.Error(1)
}

func (m *MockReservationRepository) Create(ctx context.Context, r *cafe.Reservation, capacity int) error {
	args := m.Called(ctx, r, capacity)
	if r != nil && args.Error(0) == nil {
		r.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*cafe.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cafe.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListByUser(ctx context.Context, userID int64) ([]cafe.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cafe.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Cancel(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(eventType string, payload any) {
	m.Called(eventType, payload)
}

// 2026-03-02 is a Monday, 2026-03-07 a Saturday, 2026-03-08 a Sunday.
const (
	openDate    = "2026-03-02"
	membersDate = "2026-03-07"
	closedDate  = "2026-03-08"
)

func TestCreateReservation_Success(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("Create", mock.Anything, mock.Anything, SeatCapacity).Return(nil)

	events := new(MockEventPublisher)
	events.On("Publish", "reservation.created", mock.Anything).Return()

	service := NewService(repo, events)

	r, err := service.CreateReservation(context.Background(), 42, CreateReservationRequest{
		Date:        openDate,
		Time:        "14:00",
		PartySize:   2,
		DurationMin: 60,
		Note:        "window seat",
	})

	assert.NoError(t, err)
	assert.NotNil(t, r)
	assert.Equal(t, int64(42), r.UserID)
	assert.Equal(t, 14*60, r.StartMin)
	assert.Equal(t, cafe.StatusConfirmed, r.Status)
	assert.NotEmpty(t, r.Ref)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestCreateReservation_Validation(t *testing.T) {
	service := NewService(new(MockReservationRepository), nil)

	cases := []CreateReservationRequest{
		{Date: openDate, Time: "14:00", PartySize: 0, DurationMin: 60},
		{Date: openDate, Time: "14:00", PartySize: 2, DurationMin: 20},
		{Date: openDate, Time: "14:00", PartySize: 2, DurationMin: 300},
		{Date: "03/02/2026", Time: "14:00", PartySize: 2, DurationMin: 60},
		{Date: openDate, Time: "25:00", PartySize: 2, DurationMin: 60},
		{Date: openDate, Time: "half past two", PartySize: 2, DurationMin: 60},
	}
	for _, req := range cases {
		_, err := service.CreateReservation(context.Background(), 1, req)
		assert.ErrorIs(t, err, cafe.ErrValidation, "request %+v", req)
	}
}

func TestCreateReservation_ClosedDay(t *testing.T) {
	service := NewService(new(MockReservationRepository), nil)

	_, err := service.CreateReservation(context.Background(), 1, CreateReservationRequest{
		Date: closedDate, Time: "12:00", PartySize: 2, DurationMin: 60,
	})
	assert.ErrorIs(t, err, cafe.ErrClosedDay)
}

func TestCreateReservation_MembersOnly(t *testing.T) {
	service := NewService(new(MockReservationRepository), nil)

	_, err := service.CreateReservation(context.Background(), 1, CreateReservationRequest{
		Date: membersDate, Time: "09:00", PartySize: 2, DurationMin: 60,
	})
	assert.ErrorIs(t, err, cafe.ErrMembersOnly)
}

func TestCreateReservation_CapacityExceeded(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("Create", mock.Anything, mock.Anything, SeatCapacity).
		Return(&cafe.CapacityError{Remaining: 3, Capacity: SeatCapacity})

	service := NewService(repo, nil)

	_, err := service.CreateReservation(context.Background(), 1, CreateReservationRequest{
		Date: openDate, Time: "14:30", PartySize: 4, DurationMin: 60,
	})

	assert.ErrorIs(t, err, cafe.ErrCapacityExceeded)
	var capErr *cafe.CapacityError
	assert.ErrorAs(t, err, &capErr)
	assert.Equal(t, 3, capErr.Remaining)
}

func TestAvailability_ClosedDayHasNoSlots(t *testing.T) {
	repo := new(MockReservationRepository)
	service := NewService(repo, nil)

	resp, err := service.Availability(context.Background(), closedDate)

	assert.NoError(t, err)
	assert.Equal(t, DayClosed, resp.Policy)
	assert.Empty(t, resp.Slots)
	repo.AssertNotCalled(t, "BookedSeats")
}

func TestAvailability_SlotGridAndRemaining(t *testing.T) {
	repo := new(MockReservationRepository)
	// 7 seats taken for every slot window
	repo.On("BookedSeats", mock.Anything, openDate, mock.Anything, SlotDurationMin).Return(7, nil)

	service := NewService(repo, nil)

	resp, err := service.Availability(context.Background(), openDate)

	assert.NoError(t, err)
	assert.Equal(t, DayOpen, resp.Policy)
	// 09:00 .. 20:00 inclusive, every 30 minutes
	assert.Len(t, resp.Slots, 23)
	assert.Equal(t, "09:00", resp.Slots[0].Time)
	assert.Equal(t, "20:00", resp.Slots[len(resp.Slots)-1].Time)
	for _, s := range resp.Slots {
		assert.Equal(t, 3, s.Remaining)
	}
}

func TestAvailability_RemainingNeverNegative(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("BookedSeats", mock.Anything, openDate, mock.Anything, SlotDurationMin).Return(12, nil)

	service := NewService(repo, nil)

	resp, err := service.Availability(context.Background(), openDate)

	assert.NoError(t, err)
	for _, s := range resp.Slots {
		assert.Equal(t, 0, s.Remaining)
	}
}

func TestCancelReservation_Success(t *testing.T) {
	repo := new(MockReservationRepository)
	now := time.Now().UTC()
	repo.On("GetByID", mock.Anything, int64(7)).Return(&cafe.Reservation{
		ID: 7, UserID: 42, Status: cafe.StatusConfirmed,
	}, nil).Once()
	repo.On("Cancel", mock.Anything, int64(7)).Return(nil)
	repo.On("GetByID", mock.Anything, int64(7)).Return(&cafe.Reservation{
		ID: 7, UserID: 42, Status: cafe.StatusCancelled, CancelledAt: &now,
	}, nil).Once()

	events := new(MockEventPublisher)
	events.On("Publish", "reservation.cancelled", mock.Anything).Return()

	service := NewService(repo, events)

	r, err := service.CancelReservation(context.Background(), 7, 42)

	assert.NoError(t, err)
	assert.Equal(t, cafe.StatusCancelled, r.Status)
	assert.NotNil(t, r.CancelledAt)
	repo.AssertExpectations(t)
}

func TestCancelReservation_NotFound(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(nil, cafe.ErrNotFound)

	service := NewService(repo, nil)

	_, err := service.CancelReservation(context.Background(), 7, 42)
	assert.ErrorIs(t, err, cafe.ErrNotFound)
}

func TestCancelReservation_Forbidden(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(&cafe.Reservation{
		ID: 7, UserID: 1, Status: cafe.StatusConfirmed,
	}, nil)

	service := NewService(repo, nil)

	_, err := service.CancelReservation(context.Background(), 7, 42)
	assert.ErrorIs(t, err, cafe.ErrForbidden)
	repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}

func TestCancelReservation_AlreadyCancelled(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(&cafe.Reservation{
		ID: 7, UserID: 42, Status: cafe.StatusCancelled,
	}, nil)

	service := NewService(repo, nil)

	_, err := service.CancelReservation(context.Background(), 7, 42)
	assert.ErrorIs(t, err, cafe.ErrInvalidState)
}

func TestCreateReservation_RepositoryErrorPassesThrough(t *testing.T) {
	repo := new(MockReservationRepository)
	dbErr := errors.New("db down")
	repo.On("Create", mock.Anything, mock.Anything, SeatCapacity).Return(dbErr)

	service := NewService(repo, nil)

	_, err := service.CreateReservation(context.Background(), 1, CreateReservationRequest{
		Date: openDate, Time: "10:00", PartySize: 2, DurationMin: 60,
	})
	assert.ErrorIs(t, err, dbErr)
}
