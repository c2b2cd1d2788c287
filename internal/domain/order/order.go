package order

import "time"

// Order is an immutable purchase-history record. The line items are frozen
// into ItemsJSON at checkout time; rows are never updated after insert.
type Order struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Ref           string    `json:"ref" gorm:"size:36;uniqueIndex"`
	UserID        int64     `json:"user_id" gorm:"index;not null"`
	PurchasedAt   time.Time `json:"purchased_at" gorm:"index;not null"`
	TotalAmount   float64   `json:"total_amount" gorm:"not null"`
	PaymentMethod string    `json:"payment_method" gorm:"size:64"`
	BuyerName     string    `json:"buyer_name" gorm:"size:120"`
	BuyerEmail    string    `json:"buyer_email" gorm:"size:255"`
	ItemsJSON     string    `json:"items_json" gorm:"type:text;not null"`
}

func (Order) TableName() string { return "purchase_history" }
