package catalog

import (
	"context"

	"aacorner/internal/domain/catalog"
)

// PriceQuote is the denormalized title/price a cart line is built from.
type PriceQuote struct {
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
}

type Service struct {
	books catalog.BookRepository
	games catalog.GameRepository
}

func NewService(books catalog.BookRepository, games catalog.GameRepository) *Service {
	return &Service{books: books, games: games}
}

func (s *Service) ListBooks(ctx context.Context, f catalog.BookFilters) ([]catalog.Book, error) {
	return s.books.List(ctx, f)
}

func (s *Service) GetBook(ctx context.Context, id int64) (*catalog.Book, error) {
	return s.books.GetByID(ctx, id)
}

func (s *Service) ListGames(ctx context.Context) ([]catalog.Game, error) {
	return s.games.List(ctx)
}

func (s *Service) GetGame(ctx context.Context, id int64) (*catalog.Game, error) {
	return s.games.GetByID(ctx, id)
}

// ResolvePrice returns title and unit price for (itemType, itemID, action).
// Unknown types and missing items surface catalog.ErrNotFound.
func (s *Service) ResolvePrice(ctx context.Context, itemType string, itemID int64, action string) (*PriceQuote, error) {
	switch itemType {
	case "book":
		b, err := s.books.GetByID(ctx, itemID)
		if err != nil {
			return nil, err
		}
		return &PriceQuote{Title: b.Title, UnitPrice: priceFor(action, b.BuyPrice, b.RentPrice)}, nil
	case "game":
		g, err := s.games.GetByID(ctx, itemID)
		if err != nil {
			return nil, err
		}
		return &PriceQuote{Title: g.Title, UnitPrice: priceFor(action, g.BuyPrice, g.RentPrice)}, nil
	default:
		return nil, catalog.ErrNotFound
	}
}

func priceFor(action string, buy, rent float64) float64 {
	if action == "rent" {
		return rent
	}
	return buy
}
