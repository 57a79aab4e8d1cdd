package response

import (
	"time"

	"b2b_sourcing/internal/domain/entities"
)

type FeesResponse struct {
	Service  string `json:"service"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Other    string `json:"other"`
	Total    string `json:"total"`
}

type QuoteResponse struct {
	ID                    string       `json:"id"`
	RequestID             string       `json:"request_id"`
	VendorID              string       `json:"vendor_id"`
	Price                 string       `json:"price"`
	Fees                  FeesResponse `json:"fees"`
	TotalPrice            string       `json:"total_price"`
	EstimatedDeliveryDays int          `json:"estimated_delivery_days"`
	Status                string       `json:"status"`
	StatusLabel           string       `json:"status_label"`
	Note                  string       `json:"note,omitempty"`
	SubmittedAt           time.Time    `json:"submitted_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
}

func FromVendorQuote(q entities.VendorQuote) QuoteResponse {
	return QuoteResponse{
		ID:        q.ID,
		RequestID: q.RequestID,
		VendorID:  q.VendorID,
		Price:     q.Price.StringFixed(2),
		Fees: FeesResponse{
			Service:  q.Fees.Service.StringFixed(2),
			Shipping: q.Fees.Shipping.StringFixed(2),
			Tax:      q.Fees.Tax.StringFixed(2),
			Other:    q.Fees.Other.StringFixed(2),
			Total:    q.Fees.Sum().StringFixed(2),
		},
		TotalPrice:            q.TotalPrice().StringFixed(2),
		EstimatedDeliveryDays: q.EstimatedDeliveryDays,
		Status:                string(q.Status),
		StatusLabel:           q.Status.Label(),
		Note:                  q.Note,
		SubmittedAt:           q.SubmittedAt,
		UpdatedAt:             q.UpdatedAt,
	}
}

func FromVendorQuotes(qs []entities.VendorQuote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromVendorQuote(q))
	}
	return out
}

type VendorResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Rating              float64 `json:"rating"`
	ReviewCount         int     `json:"review_count"`
	Premium             bool    `json:"premium"`
	Verified            bool    `json:"verified"`
	IsPreferredPartner  bool    `json:"is_preferred_partner"`
	ResponseTimeMinutes int     `json:"response_time_minutes"`
	SuccessRate         float64 `json:"success_rate"`
	MinDeliveryDays     int     `json:"min_delivery_days"`
	MaxDeliveryDays     int     `json:"max_delivery_days"`
}

func FromVendorProfile(v entities.VendorProfile) VendorResponse {
	return VendorResponse(v)
}

func FromVendorProfiles(vs []entities.VendorProfile) []VendorResponse {
	out := make([]VendorResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVendorProfile(v))
	}
	return out
}
