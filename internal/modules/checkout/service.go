package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"aacorner/internal/domain/cart"
	"aacorner/internal/domain/order"

	"github.com/google/uuid"
)

const defaultPaymentMethod = "Demo"

type EventPublisher interface {
	Publish(eventType string, payload any)
}

type Service struct {
	orders order.Repository
	carts  cart.Store
	events EventPublisher
}

func NewService(orders order.Repository, carts cart.Store, events EventPublisher) *Service {
	return &Service{orders: orders, carts: carts, events: events}
}

// Checkout freezes the cart into a purchase-history record. The cart is
// cleared only after the insert committed; a persistence failure leaves
// every line in place.
func (s *Service) Checkout(ctx context.Context, userID int64, req CheckoutRequest) (*order.Order, error) {
	c, err := s.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c.Empty() {
		return nil, ErrEmptyCart
	}

	subtotal, _ := c.Totals()
	itemsJSON, err := json.Marshal(c.Items)
	if err != nil {
		return nil, err
	}

	method := req.PaymentMethod
	if method == "" {
		method = defaultPaymentMethod
	}

	o := &order.Order{
		Ref:           uuid.NewString(),
		UserID:        userID,
		PurchasedAt:   time.Now().UTC(),
		TotalAmount:   subtotal,
		PaymentMethod: method,
		BuyerName:     req.Buyer.Name,
		BuyerEmail:    req.Buyer.Email,
		ItemsJSON:     string(itemsJSON),
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		// The order exists; a stale cart is recoverable, losing the order
		// is not. Log and move on.
		log.Printf("checkout: order %d recorded but cart clear failed for user %d: %v", o.ID, userID, err)
	}

	if s.events != nil {
		s.events.Publish("order.created", o)
	}
	return o, nil
}

func (s *Service) History(ctx context.Context, userID int64) ([]order.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
