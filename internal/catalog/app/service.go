package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/dohsarpay/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// CategoryAll disables the category restriction in Filter.
const CategoryAll = "All"

type Service struct {
	repo BookRepo
}

func NewService(repo BookRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// BookInput carries the caller-editable fields of a book. The catalog
// assigns ids itself.
type BookInput struct {
	Title         string
	Author        string
	Price         int64
	OriginalPrice int64
	Category      string
	Rating        float64
	CoverURL      string
	Description   string
	AuthorBio     string
}

func (s *Service) AddBook(ctx context.Context, in BookInput) (domain.Book, error) {
	b, err := domain.NewBook(in.Title, in.Author, in.Price, in.OriginalPrice, in.Category, in.Rating, in.CoverURL, in.Description, in.AuthorBio)
	if err != nil {
		return domain.Book{}, ErrInvalidInput
	}

	return s.repo.Insert(ctx, b)
}

func (s *Service) GetBook(ctx context.Context, id int) (domain.Book, error) {
	if id <= 0 {
		return domain.Book{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.repo.List(ctx)
}

// Filter applies the category and query predicates conjunctively, keeping
// catalog insertion order. Category "All" (or blank) means no category
// restriction; a non-empty query keeps books whose title or author contains
// it as a case-insensitive substring.
func (s *Service) Filter(ctx context.Context, category, query string) ([]domain.Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if category != "" && category != CategoryAll && b.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(b.Title), query) &&
			!strings.Contains(strings.ToLower(b.Author), query) {
			continue
		}
		out = append(out, b)
	}

	return out, nil
}

// UpdateBook replaces the editable fields of an existing book, with the
// same validation as AddBook. The id itself never changes.
func (s *Service) UpdateBook(ctx context.Context, id int, in BookInput) (domain.Book, error) {
	if id <= 0 {
		return domain.Book{}, ErrInvalidInput
	}

	if _, err := s.repo.Get(ctx, id); err != nil {
		return domain.Book{}, err
	}

	b, err := domain.NewBook(in.Title, in.Author, in.Price, in.OriginalPrice, in.Category, in.Rating, in.CoverURL, in.Description, in.AuthorBio)
	if err != nil {
		return domain.Book{}, ErrInvalidInput
	}
	b.ID = id

	if err := s.repo.Update(ctx, b); err != nil {
		return domain.Book{}, err
	}

	return b, nil
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
