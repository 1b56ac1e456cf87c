package app

import (
	"context"

	"github.com/dwikikusuma/dohsarpay/internal/cart/domain"
)

type CartRepo interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Upsert(ctx context.Context, sessionID string, line domain.Line) error
	RemoveLine(ctx context.Context, sessionID string, bookID int) error
	Clear(ctx context.Context, sessionID string) error
}

// CatalogReader resolves the book fields snapshotted into a new line.
type CatalogReader interface {
	GetBook(ctx context.Context, id int) (BookSnapshot, error)
}

type BookSnapshot struct {
	ID       int
	Title    string
	Author   string
	Price    int64
	CoverURL string
}
