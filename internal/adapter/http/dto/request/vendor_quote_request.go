package request

import (
	"strings"

	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/usecase"

	"github.com/shopspring/decimal"
)

type FeesRequest struct {
	Service  decimal.Decimal `json:"service"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Other    decimal.Decimal `json:"other"`
}

// SubmitQuoteRequest is a vendor's quote. VendorID may be omitted when the
// caller is the vendor itself.
type SubmitQuoteRequest struct {
	VendorID              string          `json:"vendor_id"`
	Price                 decimal.Decimal `json:"price"`
	Fees                  FeesRequest     `json:"fees"`
	EstimatedDeliveryDays int             `json:"estimated_delivery_days" binding:"gte=0"`
	Note                  string          `json:"note"`
	Draft                 bool            `json:"draft"`
}

func (r SubmitQuoteRequest) ToInput() usecase.SubmitQuoteInput {
	return usecase.SubmitQuoteInput{
		VendorID: strings.TrimSpace(r.VendorID),
		Price:    r.Price,
		Fees: entities.Fees{
			Service:  r.Fees.Service,
			Shipping: r.Fees.Shipping,
			Tax:      r.Fees.Tax,
			Other:    r.Fees.Other,
		},
		EstimatedDeliveryDays: r.EstimatedDeliveryDays,
		Note:                  strings.TrimSpace(r.Note),
		Draft:                 r.Draft,
	}
}
