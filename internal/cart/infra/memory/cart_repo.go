package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/dohsarpay/internal/cart/domain"
)

// CartRepo holds every session's cart lines in memory. Lines keep their
// first-add order within a cart.
type CartRepo struct {
	mu    sync.RWMutex
	carts map[string][]domain.Line
}

func NewCartRepo() *CartRepo {
	return &CartRepo{
		carts: make(map[string][]domain.Line),
	}
}

func (r *CartRepo) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := make([]domain.Line, len(r.carts[sessionID]))
	copy(lines, r.carts[sessionID])

	return domain.Cart{
		SessionID: sessionID,
		Lines:     lines,
	}, nil
}

// Upsert replaces the line for the book id, or appends it if the cart has
// no line for that book yet.
func (r *CartRepo) Upsert(ctx context.Context, sessionID string, line domain.Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[sessionID]
	for i, have := range lines {
		if have.BookID == line.BookID {
			lines[i] = line
			return nil
		}
	}
	r.carts[sessionID] = append(lines, line)
	return nil
}

func (r *CartRepo) RemoveLine(ctx context.Context, sessionID string, bookID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[sessionID]
	for i, have := range lines {
		if have.BookID == bookID {
			r.carts[sessionID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *CartRepo) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}
