package cafe

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Reservation{}))
	return db
}

func confirmed(userID int64, date string, startMin, durationMin, party int) *Reservation {
	return &Reservation{
		Ref:         uuid.NewString(),
		UserID:      userID,
		Date:        date,
		StartMin:    startMin,
		DurationMin: durationMin,
		PartySize:   party,
		Status:      StatusConfirmed,
	}
}

func TestAdmissionConflict(t *testing.T) {
	// Party no longer fits: a capacity error with the fresh remaining count.
	err := admissionConflict(3, 5, 10)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, 3, capErr.Remaining)
	require.Equal(t, 10, capErr.Capacity)

	// Seats still free after the lost race: a plain conflict, not a
	// capacity claim.
	err = admissionConflict(5, 5, 10)
	require.ErrorIs(t, err, ErrConflict)
	require.NotErrorIs(t, err, ErrCapacityExceeded)

	// Negative remaining is clamped.
	err = admissionConflict(-2, 1, 10)
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, 0, capErr.Remaining)
}

func TestBookedSeats_SumsOverlappingConfirmed(t *testing.T) {
	db := testDB(t)
	repo := NewReservationRepository(db)
	ctx := context.Background()

	// 14:00-15:00, 7 seats
	require.NoError(t, repo.Create(ctx, confirmed(1, "2026-03-02", 14*60, 60, 7), 10))

	booked, err := repo.BookedSeats(ctx, "2026-03-02", 14*60+30, 60)
	require.NoError(t, err)
	require.Equal(t, 7, booked)

	// back-to-back interval does not count
	booked, err = repo.BookedSeats(ctx, "2026-03-02", 15*60, 60)
	require.NoError(t, err)
	require.Equal(t, 0, booked)

	// other dates do not count
	booked, err = repo.BookedSeats(ctx, "2026-03-03", 14*60+30, 60)
	require.NoError(t, err)
	require.Equal(t, 0, booked)
}

func TestCreate_RejectsOverCapacityWithRemaining(t *testing.T) {
	db := testDB(t)
	repo := NewReservationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, confirmed(1, "2026-03-02", 14*60, 60, 7), 10))

	// 14:30-15:30 overlaps; 7 + 4 > 10
	err := repo.Create(ctx, confirmed(2, "2026-03-02", 14*60+30, 60, 4), 10)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, 3, capErr.Remaining)
	require.Equal(t, 10, capErr.Capacity)

	// nothing was inserted
	var cnt int64
	require.NoError(t, db.Model(&Reservation{}).Count(&cnt).Error)
	require.Equal(t, int64(1), cnt)
}

func TestCreate_AdmitsWhenPartyFits(t *testing.T) {
	db := testDB(t)
	repo := NewReservationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, confirmed(1, "2026-03-02", 14*60, 60, 7), 10))
	require.NoError(t, repo.Create(ctx, confirmed(2, "2026-03-02", 14*60+30, 60, 3), 10))

	booked, err := repo.BookedSeats(ctx, "2026-03-02", 14*60+30, 30)
	require.NoError(t, err)
	require.Equal(t, 10, booked)
}

func TestCancel_FreesSeatsImmediately(t *testing.T) {
	db := testDB(t)
	repo := NewReservationRepository(db)
	ctx := context.Background()

	r := confirmed(1, "2026-03-02", 14*60, 60, 7)
	require.NoError(t, repo.Create(ctx, r, 10))

	require.NoError(t, repo.Cancel(ctx, r.ID))

	booked, err := repo.BookedSeats(ctx, "2026-03-02", 14*60, 60)
	require.NoError(t, err)
	require.Equal(t, 0, booked)

	// the row survives as history
	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, got.Status)
	require.NotNil(t, got.CancelledAt)
}

func TestGetByID_NotFound(t *testing.T) {
	db := testDB(t)
	repo := NewReservationRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListByUser_SortedDateThenStartDescending(t *testing.T) {
	db := testDB(t)
	repo := NewReservationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, confirmed(1, "2026-03-02", 10*60, 60, 2), 10))
	require.NoError(t, repo.Create(ctx, confirmed(1, "2026-03-03", 9*60, 60, 2), 10))
	require.NoError(t, repo.Create(ctx, confirmed(1, "2026-03-02", 18*60, 60, 2), 10))
	require.NoError(t, repo.Create(ctx, confirmed(2, "2026-03-02", 12*60, 60, 2), 10))

	rows, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "2026-03-03", rows[0].Date)
	require.Equal(t, 18*60, rows[1].StartMin)
	require.Equal(t, 10*60, rows[2].StartMin)
}
