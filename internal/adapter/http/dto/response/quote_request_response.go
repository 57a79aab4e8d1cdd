package response

import (
	"time"

	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/usecase"
)

type LineItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Notes     string `json:"notes,omitempty"`
}

type StatusChangeResponse struct {
	At        time.Time `json:"at"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	ToLabel   string    `json:"to_label"`
	ActorRole string    `json:"actor_role"`
	ActorID   string    `json:"actor_id,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

type QuoteRequestResponse struct {
	ID          string                 `json:"id"`
	BuyerID     string                 `json:"buyer_id"`
	Status      string                 `json:"status"`
	StatusLabel string                 `json:"status_label"`
	LineItems   []LineItemResponse     `json:"line_items"`
	Baseline    string                 `json:"baseline"`
	QuoteCount  int                    `json:"quote_count"`
	Quotes      []QuoteResponse        `json:"quotes"`
	History     []StatusChangeResponse `json:"history"`
	Version     int64                  `json:"version"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	ExpiresAt   time.Time              `json:"expires_at"`
}

func FromQuoteRequest(r entities.QuoteRequest) QuoteRequestResponse {
	res := QuoteRequestResponse{
		ID:          r.ID,
		BuyerID:     r.BuyerID,
		Status:      string(r.Status),
		StatusLabel: r.Status.Label(),
		LineItems:   make([]LineItemResponse, 0, len(r.LineItems)),
		Baseline:    r.Baseline().StringFixed(2),
		Quotes:      make([]QuoteResponse, 0, len(r.Quotes)),
		History:     make([]StatusChangeResponse, 0, len(r.History)),
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		ExpiresAt:   r.ExpiresAt,
	}
	for _, li := range r.LineItems {
		res.LineItems = append(res.LineItems, LineItemResponse{
			ProductID: li.ProductID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice.StringFixed(2),
			Notes:     li.Notes,
		})
	}
	for _, q := range r.Quotes {
		if q.Status != entities.QuoteStatusDraft {
			res.QuoteCount++
		}
		res.Quotes = append(res.Quotes, FromVendorQuote(q))
	}
	for _, h := range r.History {
		res.History = append(res.History, StatusChangeResponse{
			At:        h.At,
			From:      string(h.From),
			To:        string(h.To),
			ToLabel:   h.To.Label(),
			ActorRole: string(h.Actor.Role),
			ActorID:   h.Actor.ID,
			Reason:    h.Reason,
		})
	}
	return res
}

func FromQuoteRequests(rs []entities.QuoteRequest) []QuoteRequestResponse {
	out := make([]QuoteRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromQuoteRequest(r))
	}
	return out
}

// RankedQuoteResponse is one row of a ranked quote list.
type RankedQuoteResponse struct {
	Position int            `json:"position"`
	Quote    QuoteResponse  `json:"quote"`
	Vendor   VendorResponse `json:"vendor"`
}

func FromQuoteViews(views []usecase.QuoteView) []RankedQuoteResponse {
	out := make([]RankedQuoteResponse, 0, len(views))
	for _, v := range views {
		out = append(out, RankedQuoteResponse{
			Position: v.Position,
			Quote:    FromVendorQuote(v.Quote),
			Vendor:   FromVendorProfile(v.Vendor),
		})
	}
	return out
}
