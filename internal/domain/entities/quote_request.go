package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus represents the lifecycle of a quote request.
//
// Domain notes:
//   - PENDING is the only state open to vendor quotes.
//   - REJECTED, EXPIRED and COMPLETED are terminal; REJECTED/EXPIRED may only
//     leave through the admin reset override.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusApproved  RequestStatus = "APPROVED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusExpired   RequestStatus = "EXPIRED"
	RequestStatusCompleted RequestStatus = "COMPLETED"
)

func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusExpired, RequestStatusCompleted:
		return true
	default:
		return false
	}
}

// Terminal reports whether no request-driven transition leaves s.
func (s RequestStatus) Terminal() bool {
	switch s {
	case RequestStatusRejected, RequestStatusExpired, RequestStatusCompleted:
		return true
	default:
		return false
	}
}

// LineItem is one product the buyer asks pricing for. Slice order is display order.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes,omitempty"`
}

// StatusChange is one entry of a request's transition audit trail.
type StatusChange struct {
	At     time.Time     `json:"at"`
	From   RequestStatus `json:"from"`
	To     RequestStatus `json:"to"`
	Actor  Actor         `json:"actor"`
	Reason string        `json:"reason,omitempty"`
}

// QuoteRequest is the canonical request document. Quotes live inside it so that a
// transition and its side effects on sibling quotes are persisted as one write.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: optimistic concurrency stamp, incremented on every write
type QuoteRequest struct {
	ID           string         `json:"id"`
	BuyerID      string         `json:"buyer_id"`
	LineItems    []LineItem     `json:"line_items"`
	Status       RequestStatus  `json:"status"`
	Quotes       []VendorQuote  `json:"quotes"`
	History      []StatusChange `json:"history"`
	NextQuoteSeq int            `json:"next_quote_seq"`
	Version      int64          `json:"version"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	ExpiresAt    time.Time      `json:"expires_at"`
}

// Baseline is the sum of the line items' list prices.
func (r QuoteRequest) Baseline() decimal.Decimal {
	total := decimal.Zero
	for _, li := range r.LineItems {
		total = total.Add(li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity))))
	}
	return total
}

// QuoteByVendor returns the index of the vendor's quote, or -1.
func (r QuoteRequest) QuoteByVendor(vendorID string) int {
	for i, q := range r.Quotes {
		if q.VendorID == vendorID {
			return i
		}
	}
	return -1
}

// SelectedQuote returns the quote holding SELECTED, if any.
func (r QuoteRequest) SelectedQuote() (VendorQuote, bool) {
	for _, q := range r.Quotes {
		if q.Status == QuoteStatusSelected {
			return q, true
		}
	}
	return VendorQuote{}, false
}

// HasQuoteFrom reports whether vendorID has any quote on the request.
func (r QuoteRequest) HasQuoteFrom(vendorID string) bool {
	return r.QuoteByVendor(vendorID) >= 0
}

// Clone returns a copy that shares no slices with r.
func (r QuoteRequest) Clone() QuoteRequest {
	out := r
	out.LineItems = append([]LineItem(nil), r.LineItems...)
	out.Quotes = append([]VendorQuote(nil), r.Quotes...)
	out.History = append([]StatusChange(nil), r.History...)
	return out
}

// RequestFilter narrows request listings. Empty fields match everything.
type RequestFilter struct {
	Status   RequestStatus
	BuyerID  string
	VendorID string
}
