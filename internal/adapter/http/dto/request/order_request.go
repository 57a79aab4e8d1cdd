package request

import (
	"encoding/json"
	"strings"

	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/usecase"
)

type ShippingRequest struct {
	RecipientName string `json:"recipient_name" binding:"required"`
	Phone         string `json:"phone"`
	Address       string `json:"address" binding:"required"`
	PostalCode    string `json:"postal_code"`
	Memo          string `json:"memo"`
}

// ConfirmPaymentRequest confirms payment for the accepted quote.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas; amount and reference are overwritten server-side.
type ConfirmPaymentRequest struct {
	Shipping  ShippingRequest `json:"shipping" binding:"required"`
	MPPayload json.RawMessage `json:"mp_payload"`
}

func (r ConfirmPaymentRequest) ToInput() usecase.ConfirmPaymentInput {
	payload := r.MPPayload
	if len(strings.TrimSpace(string(payload))) == 0 || strings.TrimSpace(string(payload)) == "null" {
		payload = json.RawMessage("{}")
	}
	return usecase.ConfirmPaymentInput{
		Shipping: entities.ShippingDetails{
			RecipientName: strings.TrimSpace(r.Shipping.RecipientName),
			Phone:         strings.TrimSpace(r.Shipping.Phone),
			Address:       strings.TrimSpace(r.Shipping.Address),
			PostalCode:    strings.TrimSpace(r.Shipping.PostalCode),
			Memo:          r.Shipping.Memo,
		},
		Payload: payload,
	}
}

type AdvanceShippingRequest struct {
	Status      string `json:"status" binding:"required"`
	Description string `json:"description"`
}

func (r AdvanceShippingRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}
