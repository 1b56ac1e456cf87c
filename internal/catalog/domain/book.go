package domain

import (
	"errors"
	"strings"
)

// Book is a sellable catalog entry. Price and OriginalPrice are in minor
// currency units. OriginalPrice == 0 means no original price was given;
// when it is present but not greater than Price the discount display is
// simply a no-op, there is no invariant tying the two together.
type Book struct {
	ID            int
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

var ErrInvalidBook = errors.New("invalid book")

// NewBook validates the caller-supplied fields. The ID is assigned by the
// catalog, not the caller.
func NewBook(title, author string, price, originalPrice int64, category string, rating float64, coverURL, description, authorBio string) (Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	category = strings.TrimSpace(category)

	if title == "" || author == "" {
		return Book{}, ErrInvalidBook
	}
	if price < 0 || originalPrice < 0 {
		return Book{}, ErrInvalidBook
	}
	if rating < 0 || rating > 5 {
		return Book{}, ErrInvalidBook
	}

	return Book{
		Title:         title,
		Author:        author,
		Price:         price,
		OriginalPrice: originalPrice,
		Category:      category,
		Rating:        rating,
		CoverURL:      coverURL,
		Description:   description,
		AuthorBio:     authorBio,
	}, nil
}

// Discounted reports whether the discount badge applies.
func (b Book) Discounted() bool {
	return b.OriginalPrice > b.Price
}
