package domain

// QuoteLine pairs a cart line's snapshot pricing with the catalog's
// current price. UnitPrice and LineTotal come from the snapshot taken at
// add time; CurrentPrice is what the catalog asks now. PriceChanged marks
// drift between the two, Delisted marks a book that has left the catalog
// since it was added.
type QuoteLine struct {
	BookID       int
	Title        string
	Quantity     int
	UnitPrice    int64
	LineTotal    int64
	CurrentPrice int64
	PriceChanged bool
	Delisted     bool
}

// Quote is the checkout summary. Total is the snapshot total — the amount
// the order will actually be placed for.
type Quote struct {
	Lines []QuoteLine
	Total int64
}
