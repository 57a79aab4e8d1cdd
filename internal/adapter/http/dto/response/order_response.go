package response

import (
	"time"

	"b2b_sourcing/internal/domain/entities"
)

type ShippingResponse struct {
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address"`
	PostalCode    string `json:"postal_code,omitempty"`
	Memo          string `json:"memo,omitempty"`
}

type HistoryEntryResponse struct {
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	Description string    `json:"description"`
}

type OrderResponse struct {
	OrderID               string                 `json:"order_id"`
	RequestID             string                 `json:"request_id"`
	QuoteID               string                 `json:"quote_id"`
	BuyerID               string                 `json:"buyer_id"`
	VendorID              string                 `json:"vendor_id"`
	LineItems             []LineItemResponse     `json:"line_items"`
	Price                 string                 `json:"price"`
	Fees                  FeesResponse           `json:"fees"`
	TotalPrice            string                 `json:"total_price"`
	EstimatedDeliveryDays int                    `json:"estimated_delivery_days"`
	Shipping              ShippingResponse       `json:"shipping"`
	PaymentID             string                 `json:"payment_id,omitempty"`
	Status                string                 `json:"status"`
	StatusLabel           string                 `json:"status_label"`
	History               []HistoryEntryResponse `json:"history"`
	Version               int64                  `json:"version"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	res := OrderResponse{
		OrderID:   o.ID,
		RequestID: o.RequestID,
		QuoteID:   o.QuoteID,
		BuyerID:   o.BuyerID,
		VendorID:  o.VendorID,
		LineItems: make([]LineItemResponse, 0, len(o.LineItems)),
		Price:     o.Price.StringFixed(2),
		Fees: FeesResponse{
			Service:  o.Fees.Service.StringFixed(2),
			Shipping: o.Fees.Shipping.StringFixed(2),
			Tax:      o.Fees.Tax.StringFixed(2),
			Other:    o.Fees.Other.StringFixed(2),
			Total:    o.Fees.Sum().StringFixed(2),
		},
		TotalPrice:            o.TotalPrice.StringFixed(2),
		EstimatedDeliveryDays: o.EstimatedDeliveryDays,
		Shipping:              ShippingResponse(o.Shipping),
		PaymentID:             o.PaymentID,
		Status:                string(o.Status),
		StatusLabel:           o.Status.Label(),
		History:               make([]HistoryEntryResponse, 0, len(o.History)),
		Version:               o.Version,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
	for _, li := range o.LineItems {
		res.LineItems = append(res.LineItems, LineItemResponse{
			ProductID: li.ProductID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice.StringFixed(2),
			Notes:     li.Notes,
		})
	}
	for _, h := range o.History {
		res.History = append(res.History, HistoryEntryResponse{
			Date:        h.Date,
			Status:      string(h.Status),
			StatusLabel: h.Status.Label(),
			Description: h.Description,
		})
	}
	return res
}

func FromOrders(os []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromOrder(o))
	}
	return out
}
