package app

import (
	"context"

	"github.com/dwikikusuma/dohsarpay/internal/catalog/domain"
)

type BookRepo interface {
	Insert(ctx context.Context, b domain.Book) (domain.Book, error)
	Get(ctx context.Context, id int) (domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
	Update(ctx context.Context, b domain.Book) error
	Delete(ctx context.Context, id int) error
}
