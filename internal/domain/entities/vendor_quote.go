package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "DRAFT"
	QuoteStatusSubmitted QuoteStatus = "SUBMITTED"
	QuoteStatusSelected  QuoteStatus = "SELECTED"
	QuoteStatusRejected  QuoteStatus = "REJECTED"
)

// Fees is the fee breakdown on top of a quote's base price.
type Fees struct {
	Service  decimal.Decimal `json:"service"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Other    decimal.Decimal `json:"other"`
}

func (f Fees) Sum() decimal.Decimal {
	return f.Service.Add(f.Shipping).Add(f.Tax).Add(f.Other)
}

// VendorQuote is one vendor's priced response to a quote request.
// (RequestID, VendorID) is unique: a resubmission replaces the previous quote.
type VendorQuote struct {
	ID                    string          `json:"id"`
	RequestID             string          `json:"request_id"`
	VendorID              string          `json:"vendor_id"`
	Price                 decimal.Decimal `json:"price"`
	Fees                  Fees            `json:"fees"`
	EstimatedDeliveryDays int             `json:"estimated_delivery_days"`
	Status                QuoteStatus     `json:"status"`
	Note                  string          `json:"note,omitempty"`
	// Sequence is the position of the vendor's first submission on the request.
	Sequence    int       `json:"sequence"`
	SubmittedAt time.Time `json:"submitted_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TotalPrice is computed on every read and never persisted.
func (q VendorQuote) TotalPrice() decimal.Decimal {
	return q.Price.Add(q.Fees.Sum())
}
