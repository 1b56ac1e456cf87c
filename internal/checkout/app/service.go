package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/dohsarpay/internal/checkout/domain"
)

type CartReader interface {
	GetCart(ctx context.Context, sessionID string) ([]CartLine, error)
}

type CartLine struct {
	BookID    int
	Title     string
	Quantity  int
	UnitPrice int64
}

type CatalogReader interface {
	GetBook(ctx context.Context, id int) (Book, error)
}

type Book struct {
	ID    int
	Title string
	Price int64
}

// ErrBookDelisted is what a CatalogReader returns for a book no longer in
// the catalog.
var ErrBookDelisted = errors.New("book no longer in catalog")

type Service struct {
	Cart    CartReader
	Catalog CatalogReader

	maxConcurrent int
}

func NewService(cart CartReader, catalog CatalogReader, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Cart:          cart,
		Catalog:       catalog,
		maxConcurrent: maxConcurrent,
	}
}

var ErrEmptyCart = errors.New("cart is empty")

// Quote joins the session's cart lines against the live catalog. Totals
// always come from the cart snapshot; the catalog lookups only annotate
// each line with the current price so the view can surface drift, never
// reprice. Lookups fan out concurrently, bounded by maxConcurrent.
func (s *Service) Quote(ctx context.Context, sessionID string) (domain.Quote, error) {
	items, err := s.Cart.GetCart(ctx, sessionID)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			line := domain.QuoteLine{
				BookID:    it.BookID,
				Title:     it.Title,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
				LineTotal: it.UnitPrice * int64(it.Quantity),
			}

			book, err := s.Catalog.GetBook(ctx, it.BookID)
			switch {
			case errors.Is(err, ErrBookDelisted):
				line.Delisted = true
			case err != nil:
				return fmt.Errorf("failed to get book %d: %w", it.BookID, err)
			default:
				line.CurrentPrice = book.Price
				line.PriceChanged = book.Price != it.UnitPrice
			}

			lines[idx] = line
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	var total int64
	for _, line := range lines {
		total += line.LineTotal
	}

	return domain.Quote{
		Lines: lines,
		Total: total,
	}, nil
}
