package domain

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Payment methods offered at checkout.
const (
	PaymentCreditCard = "Credit Card"
	PaymentPromptPay  = "PromptPay (Thai QR)"
	PaymentTrueMoney  = "TrueMoney Wallet"
	PaymentCOD        = "Cash on Delivery"
)

// Order is an immutable record of a placed checkout. Total and the line
// prices are the cart snapshot at placement time, not live catalog
// references.
type Order struct {
	ID      string
	User    string
	Date    time.Time
	Status  string
	Total   int64
	Address string
	Payment string
	Lines   []OrderLine
}

type OrderLine struct {
	BookID    int
	Title     string
	UnitPrice int64
	Quantity  int
	LineTotal int64
}

// Items is the number of distinct lines on the order.
func (o Order) Items() int {
	return len(o.Lines)
}

// ShippingInfo is the checkout form. Name and Address are required;
// Payment defaults to cash on delivery when blank.
type ShippingInfo struct {
	Name    string
	Address string
	Payment string
}

type PlaceOrderRequest struct {
	Actor    string
	Shipping ShippingInfo
	Lines    []LineRequest
}

type LineRequest struct {
	BookID    int
	Title     string
	UnitPrice int64
	Quantity  int
}
