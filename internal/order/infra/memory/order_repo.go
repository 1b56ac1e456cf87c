package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dwikikusuma/dohsarpay/internal/order/domain"
)

// OrderRepo is the in-memory ledger. Orders live at index order: the
// newest placement sits at the front of the slice.
type OrderRepo struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{
		orders: seedOrders(),
	}
}

func NewEmptyOrderRepo() *OrderRepo {
	return &OrderRepo{}
}

func (r *OrderRepo) InsertFront(ctx context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append([]domain.Order{order}, r.orders...)
	return order, nil
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// seedOrders gives the admin dashboard something to show on a fresh
// process. Like the rest of the state they vanish on restart.
func seedOrders() []domain.Order {
	return []domain.Order{
		{
			ID:      "ORD-7C21A940",
			User:    "Aye Chan",
			Date:    time.Date(2025, time.November, 12, 9, 30, 0, 0, time.UTC),
			Status:  domain.StatusPending,
			Total:   5700,
			Address: "12 Anawrahta Rd, Yangon",
			Payment: domain.PaymentPromptPay,
			Lines: []domain.OrderLine{
				{BookID: 2, Title: "The Glass Palace", UnitPrice: 3200, Quantity: 1, LineTotal: 3200},
				{BookID: 8, Title: "One Piece Vol. 105", UnitPrice: 1150, Quantity: 1, LineTotal: 1150},
				{BookID: 4, Title: "Jujutsu Kaisen Vol. 20", UnitPrice: 1250, Quantity: 1, LineTotal: 1250},
			},
		},
		{
			ID:      "ORD-03B8F1D2",
			User:    "Nilar Win",
			Date:    time.Date(2025, time.November, 8, 17, 5, 0, 0, time.UTC),
			Status:  domain.StatusCompleted,
			Total:   8400,
			Address: "88 Sukhumvit Soi 11, Bangkok",
			Payment: domain.PaymentCOD,
			Lines: []domain.OrderLine{
				{BookID: 5, Title: "Atomic Habits", UnitPrice: 4200, Quantity: 2, LineTotal: 8400},
			},
		},
	}
}
