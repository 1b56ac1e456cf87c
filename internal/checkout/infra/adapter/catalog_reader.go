package adapter

import (
	"context"
	"errors"

	catalogapp "github.com/dwikikusuma/dohsarpay/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/dohsarpay/internal/checkout/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetBook(ctx context.Context, id int) (checkoutapp.Book, error) {
	b, err := r.svc.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, catalogapp.ErrNotFound) {
			return checkoutapp.Book{}, checkoutapp.ErrBookDelisted
		}
		return checkoutapp.Book{}, err
	}

	return checkoutapp.Book{
		ID:    b.ID,
		Title: b.Title,
		Price: b.Price,
	}, nil
}
