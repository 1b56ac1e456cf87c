package app

import (
	"context"
	"errors"

	"github.com/dwikikusuma/dohsarpay/internal/cart/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo    CartRepo
	catalog CatalogReader
}

func NewService(repo CartRepo, catalog CatalogReader) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
	}
}

func (s *Service) GetCart(ctx context.Context, sessionID string) (domain.Cart, error) {
	if sessionID == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, sessionID)
}

// AddItem increments the quantity of an existing line for the book, or
// creates a new line with quantity 1, copying the book's display fields at
// the time of add. A repeat add never creates a second line.
func (s *Service) AddItem(ctx context.Context, sessionID string, bookID int) error {
	if sessionID == "" || bookID <= 0 {
		return ErrInvalidInput
	}

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	for _, ln := range cart.Lines {
		if ln.BookID == bookID {
			ln.Quantity++
			return s.repo.Upsert(ctx, sessionID, ln)
		}
	}

	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return err
	}

	return s.repo.Upsert(ctx, sessionID, domain.Line{
		BookID:   book.ID,
		Title:    book.Title,
		Author:   book.Author,
		Price:    book.Price,
		CoverURL: book.CoverURL,
		Quantity: 1,
	})
}

// RemoveItem deletes the line for the book if present; removing a book
// that is not in the cart is a no-op.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, bookID int) error {
	if sessionID == "" || bookID <= 0 {
		return ErrInvalidInput
	}
	return s.repo.RemoveLine(ctx, sessionID, bookID)
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidInput
	}
	return s.repo.Clear(ctx, sessionID)
}
