package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dwikikusuma/dohsarpay/internal/order/domain"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrMissingShipping = errors.New("shipping name and address are required")
)

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

// PlaceOrder validates the request, snapshots the totals and inserts the
// order at the head of the ledger. Validation runs before any mutation: a
// rejected request leaves the ledger untouched, and the caller keeps its
// cart. Clearing the cart after a successful placement is the caller's
// job.
func (s *Service) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.Order, error) {
	if len(req.Lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	if strings.TrimSpace(req.Shipping.Name) == "" || strings.TrimSpace(req.Shipping.Address) == "" {
		return domain.Order{}, ErrMissingShipping
	}

	payment := strings.TrimSpace(req.Shipping.Payment)
	if payment == "" {
		payment = domain.PaymentCOD
	}

	lines := make([]domain.OrderLine, 0, len(req.Lines))
	var total int64

	for i, ln := range req.Lines {
		if ln.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("line %d: quantity must be positive, got %d", i, ln.Quantity)
		}
		if ln.UnitPrice < 0 {
			return domain.Order{}, fmt.Errorf("line %d: unit price cannot be negative, got %d", i, ln.UnitPrice)
		}

		lines = append(lines, domain.OrderLine{
			BookID:    ln.BookID,
			Title:     ln.Title,
			UnitPrice: ln.UnitPrice,
			Quantity:  ln.Quantity,
			LineTotal: ln.UnitPrice * int64(ln.Quantity),
		})

		total += ln.UnitPrice * int64(ln.Quantity)
	}

	order := domain.Order{
		ID:      newOrderCode(),
		User:    strings.TrimSpace(req.Actor),
		Date:    time.Now(),
		Status:  domain.StatusPending,
		Total:   total,
		Address: strings.TrimSpace(req.Shipping.Address),
		Payment: payment,
		Lines:   lines,
	}
	if order.User == "" {
		order.User = req.Shipping.Name
	}

	return s.repo.InsertFront(ctx, order)
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

// newOrderCode returns a short display code like ORD-9F4A21C3.
func newOrderCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:8])
}
