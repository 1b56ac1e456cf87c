package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/dohsarpay/internal/cart/app"
	catalogapp "github.com/dwikikusuma/dohsarpay/internal/catalog/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetBook(ctx context.Context, id int) (cartapp.BookSnapshot, error) {
	b, err := r.svc.GetBook(ctx, id)
	if err != nil {
		return cartapp.BookSnapshot{}, err
	}

	return cartapp.BookSnapshot{
		ID:       b.ID,
		Title:    b.Title,
		Author:   b.Author,
		Price:    b.Price,
		CoverURL: b.CoverURL,
	}, nil
}
