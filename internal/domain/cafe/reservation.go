package cafe

import "time"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Reservation is one cafe table booking. Cancellation flips the status and
// stamps CancelledAt; rows are never deleted.
type Reservation struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Ref         string     `json:"ref" gorm:"size:36;uniqueIndex"`
	UserID      int64      `json:"user_id" gorm:"index;not null"`
	Date        string     `json:"date" gorm:"size:10;index;not null"` // YYYY-MM-DD
	StartMin    int        `json:"start_min" gorm:"column:start_min;not null"`
	DurationMin int        `json:"duration_min" gorm:"column:duration_min;not null"`
	PartySize   int        `json:"party_size" gorm:"not null"`
	Note        string     `json:"note,omitempty" gorm:"type:text"`
	Status      Status     `json:"status" gorm:"size:16;index"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

func (Reservation) TableName() string { return "cafe_reservations" }
