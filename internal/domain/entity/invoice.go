package entity

import "time"

// InvoiceItem represents a single line on a rendered invoice.
type InvoiceItem struct {
	Name     string
	Quantity int
	Total    int64 // cents
}

// Invoice is a value object representing a printable invoice document.
// It is NOT a database entity — it is composed from a persisted bill and
// its owner at render time, so creation-time and re-download renders are
// built from identical inputs.
type Invoice struct {
	ShopName       string
	InvoiceNo      string
	Date           string
	CustomerName   string
	CustomerMobile string
	Items          []InvoiceItem
	Total          int64 // cents
	// CreatedAt is the bill's persisted creation time. It pins the PDF
	// metadata so re-renders of the same bill are byte-identical.
	CreatedAt time.Time
}
