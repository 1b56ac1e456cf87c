package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/dohsarpay/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/dohsarpay/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetCart(ctx context.Context, sessionID string) ([]checkoutapp.CartLine, error) {
	cart, err := r.svc.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines := make([]checkoutapp.CartLine, 0, len(cart.Lines))
	for _, ln := range cart.Lines {
		lines = append(lines, checkoutapp.CartLine{
			BookID:    ln.BookID,
			Title:     ln.Title,
			Quantity:  ln.Quantity,
			UnitPrice: ln.Price,
		})
	}
	return lines, nil
}
