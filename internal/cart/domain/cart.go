package domain

// Line is one cart entry. The display fields are a snapshot of the book
// taken when it was first added; later catalog edits do not reprice lines
// already in the cart. Quantity is always >= 1 — a line never sits at
// zero, it is removed instead.
type Line struct {
	BookID   int
	Title    string
	Author   string
	Price    int64
	CoverURL string
	Quantity int
}

// Cart is a session's pending selection. At most one line per book id.
type Cart struct {
	SessionID string
	Lines     []Line
}

// Total is the sum of price*quantity over all lines, in minor units.
func (c Cart) Total() int64 {
	var total int64
	for _, ln := range c.Lines {
		total += ln.Price * int64(ln.Quantity)
	}
	return total
}

// Count is the number of physical items across all lines.
func (c Cart) Count() int {
	count := 0
	for _, ln := range c.Lines {
		count += ln.Quantity
	}
	return count
}
