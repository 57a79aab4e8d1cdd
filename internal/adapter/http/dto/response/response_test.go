package response

import (
	"testing"
	"time"

	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/usecase"

	"github.com/shopspring/decimal"
)

var t0 = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func quote(vendorID string, status entities.QuoteStatus) entities.VendorQuote {
	return entities.VendorQuote{
		ID:                    "q-" + vendorID,
		RequestID:             "req-1",
		VendorID:              vendorID,
		Price:                 decimal.NewFromInt(100),
		Fees:                  entities.Fees{Shipping: decimal.RequireFromString("10.5")},
		EstimatedDeliveryDays: 3,
		Status:                status,
		SubmittedAt:           t0,
	}
}

func TestFromQuoteRequest(t *testing.T) {
	r := entities.QuoteRequest{
		ID:      "req-1",
		BuyerID: "buyer-1",
		Status:  entities.RequestStatusApproved,
		LineItems: []entities.LineItem{
			{ProductID: "p-1", Name: "볼트", Quantity: 4, UnitPrice: decimal.RequireFromString("2.5")},
		},
		Quotes: []entities.VendorQuote{
			quote("v-a", entities.QuoteStatusSelected),
			quote("v-b", entities.QuoteStatusRejected),
			quote("v-c", entities.QuoteStatusDraft),
		},
		History: []entities.StatusChange{{
			At:    t0,
			From:  entities.RequestStatusPending,
			To:    entities.RequestStatusApproved,
			Actor: entities.Actor{Role: entities.RoleBuyer, ID: "buyer-1"},
		}},
		Version:   3,
		CreatedAt: t0,
		UpdatedAt: t0,
		ExpiresAt: t0.Add(time.Hour),
	}

	res := FromQuoteRequest(r)
	if res.Status != "APPROVED" || res.StatusLabel != "승인됨" {
		t.Fatalf("unexpected status: %+v", res)
	}
	if res.Baseline != "10.00" {
		t.Fatalf("expected baseline 10.00, got %s", res.Baseline)
	}
	if res.QuoteCount != 2 || len(res.Quotes) != 3 {
		t.Fatalf("expected 2 counted of 3 quotes, got %d of %d", res.QuoteCount, len(res.Quotes))
	}
	if res.Quotes[0].TotalPrice != "110.50" || res.Quotes[0].StatusLabel != "선택됨" {
		t.Fatalf("unexpected quote: %+v", res.Quotes[0])
	}
	if len(res.History) != 1 || res.History[0].ActorRole != "buyer" || res.History[0].ToLabel != "승인됨" {
		t.Fatalf("unexpected history: %+v", res.History)
	}
}

func TestFromQuoteViews(t *testing.T) {
	views := []usecase.QuoteView{{
		Position: 1,
		Quote:    quote("v-a", entities.QuoteStatusSubmitted),
		Vendor:   entities.VendorProfile{ID: "v-a", Name: "대한산업", Rating: 4.9, Premium: true},
	}}
	res := FromQuoteViews(views)
	if len(res) != 1 || res[0].Position != 1 || res[0].Vendor.Name != "대한산업" || !res[0].Vendor.Premium {
		t.Fatalf("unexpected views: %+v", res)
	}
	if res[0].Quote.Fees.Total != "10.50" {
		t.Fatalf("unexpected fee total: %s", res[0].Quote.Fees.Total)
	}
}

func TestFromOrder(t *testing.T) {
	o := entities.Order{
		ID:         "ord-1",
		RequestID:  "req-1",
		BuyerID:    "buyer-1",
		VendorID:   "v-a",
		Price:      decimal.NewFromInt(100),
		Fees:       entities.Fees{Shipping: decimal.NewFromInt(10)},
		TotalPrice: decimal.NewFromInt(110),
		Shipping:   entities.ShippingDetails{RecipientName: "김철수", Address: "서울시"},
		Status:     entities.OrderStatusShipping,
		History: []entities.HistoryEntry{
			{Date: t0, Status: entities.OrderStatusReceived, Description: "주문 접수"},
			{Date: t0, Status: entities.OrderStatusShipping, Description: "출고"},
		},
		Version: 2,
	}

	res := FromOrder(o)
	if res.OrderID != "ord-1" || res.TotalPrice != "110.00" || res.StatusLabel != "배송중" {
		t.Fatalf("unexpected order: %+v", res)
	}
	if res.Shipping.RecipientName != "김철수" {
		t.Fatalf("unexpected shipping: %+v", res.Shipping)
	}
	if len(res.History) != 2 || res.History[0].StatusLabel != "주문 접수" {
		t.Fatalf("unexpected history: %+v", res.History)
	}
	if got := FromOrders([]entities.Order{o, o}); len(got) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(got))
	}
}
