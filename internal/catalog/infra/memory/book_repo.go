package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/dohsarpay/internal/catalog/app"
	"github.com/dwikikusuma/dohsarpay/internal/catalog/domain"
)

// BookRepo keeps the catalog in process memory. The whole catalog is
// reset to the seed list on restart; insertion order is the order List
// returns.
type BookRepo struct {
	mu    sync.RWMutex
	books []domain.Book
}

func NewBookRepo() *BookRepo {
	return &BookRepo{
		books: seedBooks(),
	}
}

// NewEmptyBookRepo is used by tests that want full control over contents.
func NewEmptyBookRepo() *BookRepo {
	return &BookRepo{}
}

func (r *BookRepo) Insert(ctx context.Context, b domain.Book) (domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, have := range r.books {
		if have.ID > maxID {
			maxID = have.ID
		}
	}
	b.ID = maxID + 1

	r.books = append(r.books, b)
	return b, nil
}

func (r *BookRepo) Get(ctx context.Context, id int) (domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Book{}, app.ErrNotFound
}

func (r *BookRepo) List(ctx context.Context) ([]domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *BookRepo) Update(ctx context.Context, b domain.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, have := range r.books {
		if have.ID == b.ID {
			r.books[i] = b
			return nil
		}
	}
	return app.ErrNotFound
}

func (r *BookRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, have := range r.books {
		if have.ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return app.ErrNotFound
}
