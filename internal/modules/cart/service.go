package cart

import (
	"context"
	"errors"

	"aacorner/internal/domain/cart"
	"aacorner/internal/modules/catalog"

	catalogdomain "aacorner/internal/domain/catalog"
)

// PriceResolver supplies denormalized title/price for a catalog item.
type PriceResolver interface {
	ResolvePrice(ctx context.Context, itemType string, itemID int64, action string) (*catalog.PriceQuote, error)
}

type Service struct {
	carts   cart.Store
	catalog PriceResolver
}

func NewService(carts cart.Store, resolver PriceResolver) *Service {
	return &Service{carts: carts, catalog: resolver}
}

type Summary struct {
	Cart          *cart.Cart `json:"cart"`
	Subtotal      float64    `json:"subtotal"`
	TotalQuantity int        `json:"total_quantity"`
}

func summarize(c *cart.Cart) *Summary {
	subtotal, qty := c.Totals()
	if c.Items == nil {
		c.Items = []cart.Line{}
	}
	return &Summary{Cart: c, Subtotal: subtotal, TotalQuantity: qty}
}

func (s *Service) Get(ctx context.Context, userID int64) (*Summary, error) {
	c, err := s.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(c), nil
}

func (s *Service) Add(ctx context.Context, userID int64, req AddItemRequest) (*Summary, error) {
	if req.ItemType != cart.ItemTypeBook && req.ItemType != cart.ItemTypeGame {
		return nil, cart.ErrValidation
	}
	if req.Action != cart.ActionBuy && req.Action != cart.ActionRent {
		return nil, cart.ErrValidation
	}
	if req.Quantity < 1 {
		return nil, cart.ErrValidation
	}

	quote, err := s.catalog.ResolvePrice(ctx, req.ItemType, req.ItemID, req.Action)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrNotFound) {
			return nil, cart.ErrItemNotFound
		}
		return nil, err
	}

	c, err := s.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.Add(cart.Line{
		Key:       cart.LineKey(req.ItemType, req.ItemID, req.Action),
		ItemType:  req.ItemType,
		ItemID:    req.ItemID,
		Action:    req.Action,
		Title:     quote.Title,
		UnitPrice: quote.UnitPrice,
		Quantity:  req.Quantity,
	})

	if err := s.carts.Save(ctx, userID, c); err != nil {
		return nil, err
	}
	return summarize(c), nil
}

// Remove deletes the line with the given key. A missing key is a no-op, not
// an error; Removed reports 0 or 1.
func (s *Service) Remove(ctx context.Context, userID int64, key string) (*Summary, int, error) {
	c, err := s.carts.Load(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	removed := c.Remove(key)
	if removed > 0 {
		if err := s.carts.Save(ctx, userID, c); err != nil {
			return nil, 0, err
		}
	}
	return summarize(c), removed, nil
}

func (s *Service) Clear(ctx context.Context, userID int64) error {
	return s.carts.Clear(ctx, userID)
}
