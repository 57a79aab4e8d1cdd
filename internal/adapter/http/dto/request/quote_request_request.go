package request

import (
	"errors"
	"strings"
	"time"

	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/usecase"

	"github.com/shopspring/decimal"
)

var ErrInvalidExpiryWindow = errors.New("expiry_window must be a positive duration such as 72h")

type LineItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes"`
}

// CreateQuoteRequestRequest opens a new quote request. ExpiryWindow is a Go
// duration string; empty means the server default.
type CreateQuoteRequestRequest struct {
	LineItems    []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
	ExpiryWindow string            `json:"expiry_window"`
}

func (r CreateQuoteRequestRequest) ToInput() (usecase.CreateRequestInput, error) {
	in := usecase.CreateRequestInput{LineItems: make([]entities.LineItem, 0, len(r.LineItems))}
	for _, li := range r.LineItems {
		in.LineItems = append(in.LineItems, entities.LineItem{
			ProductID: strings.TrimSpace(li.ProductID),
			Name:      strings.TrimSpace(li.Name),
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Notes:     li.Notes,
		})
	}
	if w := strings.TrimSpace(r.ExpiryWindow); w != "" {
		d, err := time.ParseDuration(w)
		if err != nil || d <= 0 {
			return usecase.CreateRequestInput{}, ErrInvalidExpiryWindow
		}
		in.ExpiryWindow = d
	}
	return in, nil
}

// ForceStatusRequest is the admin override body.
type ForceStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

func (r ForceStatusRequest) ResolveStatus() entities.RequestStatus {
	return entities.RequestStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

type SelectQuoteRequest struct {
	VendorID string `json:"vendor_id" binding:"required"`
}
