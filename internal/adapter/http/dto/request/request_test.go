package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"b2b_sourcing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCreateQuoteRequestRequest_ToInput(t *testing.T) {
	var r CreateQuoteRequestRequest
	body := `{"line_items":[{"product_id":" p-1 ","name":" 볼트 ","quantity":3,"unit_price":"12.50"}],"expiry_window":"72h"}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ExpiryWindow != 72*time.Hour {
		t.Fatalf("expected 72h, got %v", in.ExpiryWindow)
	}
	if len(in.LineItems) != 1 || in.LineItems[0].ProductID != "p-1" || in.LineItems[0].Name != "볼트" {
		t.Fatalf("unexpected line items: %+v", in.LineItems)
	}
	if !in.LineItems[0].UnitPrice.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("unexpected unit price: %s", in.LineItems[0].UnitPrice)
	}

	t.Run("default window", func(t *testing.T) {
		in, err := CreateQuoteRequestRequest{LineItems: r.LineItems}.ToInput()
		if err != nil || in.ExpiryWindow != 0 {
			t.Fatalf("expected zero window, got %v err=%v", in.ExpiryWindow, err)
		}
	})

	t.Run("invalid window", func(t *testing.T) {
		for _, w := range []string{"soon", "-1h", "0s"} {
			_, err := CreateQuoteRequestRequest{LineItems: r.LineItems, ExpiryWindow: w}.ToInput()
			if !errors.Is(err, ErrInvalidExpiryWindow) {
				t.Fatalf("window %q: expected ErrInvalidExpiryWindow, got %v", w, err)
			}
		}
	})
}

func TestStatusResolution(t *testing.T) {
	if got := (ForceStatusRequest{Status: " pending "}).ResolveStatus(); got != entities.RequestStatusPending {
		t.Fatalf("expected PENDING, got %q", got)
	}
	if got := (AdvanceShippingRequest{Status: "shipping"}).ResolveStatus(); got != entities.OrderStatusShipping {
		t.Fatalf("expected SHIPPING, got %q", got)
	}
}

func TestSubmitQuoteRequest_ToInput(t *testing.T) {
	var r SubmitQuoteRequest
	body := `{"vendor_id":" v-1 ","price":100,"fees":{"shipping":"10.5","tax":2},"estimated_delivery_days":4,"note":" fast ","draft":true}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	in := r.ToInput()
	if in.VendorID != "v-1" || in.Note != "fast" || !in.Draft || in.EstimatedDeliveryDays != 4 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if !in.Fees.Sum().Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("unexpected fees sum: %s", in.Fees.Sum())
	}
}

func TestConfirmPaymentRequest_ToInput(t *testing.T) {
	r := ConfirmPaymentRequest{Shipping: ShippingRequest{RecipientName: " 김철수 ", Address: " 서울시 "}}
	in := r.ToInput()
	if string(in.Payload) != "{}" {
		t.Fatalf("expected empty object payload, got %s", in.Payload)
	}
	if in.Shipping.RecipientName != "김철수" || in.Shipping.Address != "서울시" {
		t.Fatalf("unexpected shipping: %+v", in.Shipping)
	}

	r.MPPayload = json.RawMessage(`{"token":"tok"}`)
	if got := string(r.ToInput().Payload); got != `{"token":"tok"}` {
		t.Fatalf("expected payload passthrough, got %s", got)
	}
}
