package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the shipping pipeline of a materialized order.
type OrderStatus string

const (
	OrderStatusReceived  OrderStatus = "RECEIVED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"

	// Payment claims. A claim reserves the request's order slot while the
	// gateway is charged and is never visible as an order.
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusPaymentFailed  OrderStatus = "PAYMENT_FAILED"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusReceived:  0,
	OrderStatusPreparing: 1,
	OrderStatusShipping:  2,
	OrderStatusDelivered: 3,
}

func ValidOrderStatus(s OrderStatus) bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := orderStatusRank[s]
	return ok
}

// Placed reports whether s belongs to a paid order rather than a payment claim.
func (s OrderStatus) Placed() bool {
	return s != OrderStatusPendingPayment && s != OrderStatusPaymentFailed
}

// CanAdvanceTo reports whether the pipeline may move from s to next.
// Progress is forward-only; cancellation is allowed until the parcel ships.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	if s == OrderStatusDelivered || s == OrderStatusCancelled {
		return false
	}
	if next == OrderStatusCancelled {
		return s == OrderStatusReceived || s == OrderStatusPreparing
	}
	from, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	to, ok := orderStatusRank[next]
	return ok && to > from
}

// HistoryEntry is one append-only line of an order's audit trail.
type HistoryEntry struct {
	Date        time.Time   `json:"date"`
	Status      OrderStatus `json:"status"`
	Description string      `json:"description"`
}

type ShippingDetails struct {
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PostalCode    string `json:"postal_code,omitempty"`
	Memo          string `json:"memo,omitempty"`
}

// Order is created once per request from the selected quote. Only Status and
// History change afterwards.
//
// Storage model (DynamoDB):
//   - PK: request_id (one order per request)
//   - GSI1 (id-index): id
//   - GSI2 (buyer_id-index): buyer_id
type Order struct {
	ID                    string          `json:"id"`
	RequestID             string          `json:"request_id"`
	QuoteID               string          `json:"quote_id"`
	BuyerID               string          `json:"buyer_id"`
	VendorID              string          `json:"vendor_id"`
	LineItems             []LineItem      `json:"line_items"`
	Price                 decimal.Decimal `json:"price"`
	Fees                  Fees            `json:"fees"`
	TotalPrice            decimal.Decimal `json:"total_price"`
	EstimatedDeliveryDays int             `json:"estimated_delivery_days"`
	Shipping              ShippingDetails `json:"shipping"`
	PaymentID             string          `json:"payment_id,omitempty"`
	Status                OrderStatus     `json:"status"`
	History               []HistoryEntry  `json:"history"`
	Version               int64           `json:"version"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

func (o Order) Clone() Order {
	out := o
	out.LineItems = append([]LineItem(nil), o.LineItems...)
	out.History = append([]HistoryEntry(nil), o.History...)
	return out
}
