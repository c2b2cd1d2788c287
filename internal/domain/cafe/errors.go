package cafe

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrClosedDay        = errors.New("cafe closed on this day")
	ErrMembersOnly      = errors.New("members only day")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrConflict         = errors.New("concurrent booking conflict")
	ErrNotFound         = errors.New("reservation not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidState     = errors.New("invalid reservation state")
)

// CapacityError carries the seats still available when an admission check
// fails. errors.Is(err, ErrCapacityExceeded) matches it.
type CapacityError struct {
	Remaining int
	Capacity  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: %d of %d seats remaining", e.Remaining, e.Capacity)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
