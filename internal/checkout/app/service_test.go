package app

import (
	"context"
	"testing"
)

type fakeCart struct {
	lines []CartLine
}

func (f fakeCart) GetCart(ctx context.Context, sessionID string) ([]CartLine, error) {
	return f.lines, nil
}

type fakeCatalog struct {
	books map[int]Book
}

func (f fakeCatalog) GetBook(ctx context.Context, id int) (Book, error) {
	b, ok := f.books[id]
	if !ok {
		return Book{}, ErrBookDelisted
	}
	return b, nil
}

func TestQuoteEmptyCart(t *testing.T) {
	svc := NewService(fakeCart{}, fakeCatalog{}, 4)

	if _, err := svc.Quote(context.Background(), "s1"); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestQuoteUsesSnapshotTotals(t *testing.T) {
	cart := fakeCart{lines: []CartLine{
		{BookID: 1, Title: "The Glass Palace", Quantity: 2, UnitPrice: 4500},
		{BookID: 2, Title: "Atomic Habits", Quantity: 1, UnitPrice: 4200},
	}}
	catalog := fakeCatalog{books: map[int]Book{
		1: {ID: 1, Title: "The Glass Palace", Price: 4500},
		2: {ID: 2, Title: "Atomic Habits", Price: 4700}, // repriced after add
	}}

	svc := NewService(cart, catalog, 4)
	q, err := svc.Quote(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.Total != 2*4500+4200 {
		t.Fatalf("total must come from the snapshot, got %d", q.Total)
	}
	if q.Lines[0].PriceChanged {
		t.Fatalf("line 0 flagged without drift: %+v", q.Lines[0])
	}
	if !q.Lines[1].PriceChanged || q.Lines[1].CurrentPrice != 4700 {
		t.Fatalf("line 1 drift not flagged: %+v", q.Lines[1])
	}
	if q.Lines[1].LineTotal != 4200 {
		t.Fatalf("line 1 was repriced: %+v", q.Lines[1])
	}
}

func TestQuoteFlagsDelistedBooks(t *testing.T) {
	cart := fakeCart{lines: []CartLine{
		{BookID: 7, Title: "Design Systems", Quantity: 1, UnitPrice: 8500},
	}}
	svc := NewService(cart, fakeCatalog{}, 4)

	q, err := svc.Quote(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.Lines[0].Delisted {
		t.Fatalf("expected delisted flag: %+v", q.Lines[0])
	}
	if q.Total != 8500 {
		t.Fatalf("delisted line must keep its snapshot total, got %d", q.Total)
	}
}

func TestQuoteRejectsNonPositiveQuantity(t *testing.T) {
	cart := fakeCart{lines: []CartLine{
		{BookID: 1, Title: "T", Quantity: 0, UnitPrice: 100},
	}}
	svc := NewService(cart, fakeCatalog{books: map[int]Book{1: {ID: 1}}}, 4)

	if _, err := svc.Quote(context.Background(), "s1"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestQuotePreservesLineOrder(t *testing.T) {
	cart := fakeCart{lines: []CartLine{
		{BookID: 3, Title: "c", Quantity: 1, UnitPrice: 1},
		{BookID: 1, Title: "a", Quantity: 1, UnitPrice: 1},
		{BookID: 2, Title: "b", Quantity: 1, UnitPrice: 1},
	}}
	catalog := fakeCatalog{books: map[int]Book{
		1: {ID: 1, Price: 1}, 2: {ID: 2, Price: 1}, 3: {ID: 3, Price: 1},
	}}
	svc := NewService(cart, catalog, 2)

	q, err := svc.Quote(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Lines[0].BookID != 3 || q.Lines[1].BookID != 1 || q.Lines[2].BookID != 2 {
		t.Fatalf("line order not preserved: %+v", q.Lines)
	}
}
