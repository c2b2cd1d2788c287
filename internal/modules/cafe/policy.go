package cafe

import "time"

type DayPolicy string

const (
	DayOpen        DayPolicy = "open"
	DayMembersOnly DayPolicy = "members_only"
	DayClosed      DayPolicy = "closed"
)

// Classify maps a calendar date onto the cafe's weekday policy: Sundays are
// closed, Saturdays are members-only, every other day is open. Both the
// availability query and the create path go through this single function.
func Classify(date time.Time) DayPolicy {
	switch date.Weekday() {
	case time.Sunday:
		return DayClosed
	case time.Saturday:
		return DayMembersOnly
	default:
		return DayOpen
	}
}
