package app

import (
	"context"

	"github.com/dwikikusuma/dohsarpay/internal/order/domain"
)

type OrderRepo interface {
	// InsertFront puts the order at the head of the ledger; List returns
	// ledger order, so the most recent placement is always first.
	InsertFront(ctx context.Context, order domain.Order) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}
