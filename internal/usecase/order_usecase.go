package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidOrderID             = errors.New("invalid order id")
	ErrInvalidOrderStatus         = errors.New("invalid order status")
	ErrInvalidShipping            = errors.New("invalid shipping details")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrPaymentDeclined            = errors.New("payment declined")
	ErrPaymentPending             = errors.New("payment not yet approved")
	ErrPaymentInProgress          = errors.New("payment already in progress for this request")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayNotSet       = errors.New("payment gateway not configured")
	ErrRequestNotApproved         = fmt.Errorf("%w: quote request has no accepted quote", entities.ErrInvalidTransition)
)

const (
	completeRetries = 3
	// paymentClaimTTL bounds how long an unfinished claim blocks another attempt.
	paymentClaimTTL = 2 * time.Minute
)

// ConfirmPaymentInput carries the buyer's delivery details and the raw provider
// payload. Amount and reference are always taken from the accepted quote.
type ConfirmPaymentInput struct {
	Shipping entities.ShippingDetails
	Payload  json.RawMessage
}

// IOrderUseCase turns an accepted quote into exactly one order and tracks its
// shipping pipeline.
type IOrderUseCase interface {
	ConfirmPayment(ctx context.Context, actor entities.Actor, requestID string, in ConfirmPaymentInput) (entities.Order, error)
	MaterializeOrder(ctx context.Context, requestID string, shipping entities.ShippingDetails, paymentID string) (entities.Order, bool, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Order, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Order, error)
	AdvanceShipping(ctx context.Context, actor entities.Actor, orderID string, status entities.OrderStatus, description string) (entities.Order, error)
}

type OrderUseCase struct {
	repo              interfaces.IOrderRepository
	requests          IQuoteRequestUseCase
	gateway           interfaces.IPaymentGateway
	metrics           interfaces.IMetricsRecorder
	logger            *zap.Logger
	completeOnPayment bool
	now               func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, requests IQuoteRequestUseCase, gateway interfaces.IPaymentGateway, completeOnPayment bool, logger *zap.Logger) *OrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUseCase{
		repo:              repo,
		requests:          requests,
		gateway:           gateway,
		logger:            logger.Named("order.usecase"),
		completeOnPayment: completeOnPayment,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (u *OrderUseCase) WithClock(now func() time.Time) *OrderUseCase {
	u.now = now
	return u
}

func (u *OrderUseCase) WithMetrics(m interfaces.IMetricsRecorder) *OrderUseCase {
	u.metrics = m
	return u
}

// ConfirmPayment charges the accepted quote and materializes the order. A request
// that already has an order returns it without charging again.
//
// The order slot is claimed before the gateway is called, so overlapping
// confirmations charge at most once: the loser sees ErrPaymentInProgress, or the
// placed order once the winner is done.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, actor entities.Actor, requestID string, in ConfirmPaymentInput) (entities.Order, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Order{}, ErrInvalidRequestID
	}
	shipping, err := normalizeShipping(in.Shipping)
	if err != nil {
		return entities.Order{}, err
	}

	r, err := u.requests.GetRequest(ctx, requestID)
	if err != nil {
		return entities.Order{}, err
	}
	if actor.Role != entities.RoleAdmin && (actor.Role != entities.RoleBuyer || actor.ID != r.BuyerID) {
		return entities.Order{}, fmt.Errorf("%w: only the requesting buyer pays", entities.ErrForbidden)
	}

	existing, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.Order{}, err
	}
	if existing.ID != "" && existing.Status.Placed() {
		u.logger.Info("payment already confirmed", zap.String("request_id", requestID), zap.String("order_id", existing.ID))
		return existing, nil
	}

	quote, ok := r.SelectedQuote()
	if !ok || (r.Status != entities.RequestStatusApproved && r.Status != entities.RequestStatusCompleted) {
		return entities.Order{}, ErrRequestNotApproved
	}
	if u.gateway == nil {
		u.logger.Error("payment gateway not configured", zap.String("request_id", requestID))
		return entities.Order{}, ErrPaymentGatewayNotSet
	}
	payload, err := enrichPaymentPayload(in.Payload, r, quote)
	if err != nil {
		return entities.Order{}, err
	}

	claim, placed, err := u.claim(ctx, existing, newOrder(r, quote, shipping, u.now(), entities.OrderStatusPendingPayment))
	if err != nil {
		return entities.Order{}, err
	}
	if placed {
		return claim, nil
	}

	u.logger.Info("calling payment gateway", zap.String("request_id", requestID), zap.Int("payload_len", len(payload)))
	paymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.logger.Warn("payment gateway failed", zap.String("request_id", requestID), zap.Error(err))
		u.release(ctx, claim)
		switch {
		case isGatewayUnauthorized(err):
			return entities.Order{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.Order{}, ErrPaymentGatewayBadRequest
		}
		return entities.Order{}, err
	}
	switch strings.ToLower(providerStatus) {
	case "approved":
	case "rejected", "cancelled", "refunded", "charged_back":
		u.release(ctx, claim)
		return entities.Order{}, fmt.Errorf("%w: provider status %s", ErrPaymentDeclined, providerStatus)
	default:
		u.release(ctx, claim)
		return entities.Order{}, fmt.Errorf("%w: provider status %s", ErrPaymentPending, providerStatus)
	}

	o, err := u.place(ctx, claim, shipping, paymentID)
	if err != nil {
		u.logger.Error("charged payment not attached to an order",
			zap.String("request_id", requestID),
			zap.String("payment_id", paymentID),
			zap.Error(err),
		)
		return entities.Order{}, err
	}
	if u.completeOnPayment {
		u.complete(ctx, requestID, "payment confirmed")
	}
	return o, nil
}

// MaterializeOrder creates the request's order from its SELECTED quote. It is
// idempotent: the second call returns the first order and created=false.
func (u *OrderUseCase) MaterializeOrder(ctx context.Context, requestID string, shipping entities.ShippingDetails, paymentID string) (entities.Order, bool, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Order{}, false, ErrInvalidRequestID
	}

	existing, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.Order{}, false, err
	}
	if existing.ID != "" && existing.Status.Placed() {
		return existing, false, nil
	}
	if existing.ID != "" && !u.claimReleased(existing) {
		return entities.Order{}, false, ErrPaymentInProgress
	}

	r, err := u.requests.GetRequest(ctx, requestID)
	if err != nil {
		return entities.Order{}, false, err
	}
	quote, ok := r.SelectedQuote()
	if !ok || (r.Status != entities.RequestStatusApproved && r.Status != entities.RequestStatusCompleted) {
		return entities.Order{}, false, ErrRequestNotApproved
	}

	if existing.ID != "" {
		o, err := u.place(ctx, existing, shipping, paymentID)
		if err != nil {
			return entities.Order{}, false, err
		}
		return o, true, nil
	}

	created, err := u.repo.Create(ctx, newOrder(r, quote, shipping, u.now(), entities.OrderStatusReceived))
	if errors.Is(err, entities.ErrConflict) {
		winner, gerr := u.repo.GetByRequestID(ctx, requestID)
		if gerr != nil {
			return entities.Order{}, false, gerr
		}
		if !winner.Status.Placed() {
			return entities.Order{}, false, ErrPaymentInProgress
		}
		u.recordOrder(false)
		return winner, false, nil
	}
	if err != nil {
		u.logger.Error("create order failed", zap.String("request_id", requestID), zap.Error(err))
		return entities.Order{}, false, err
	}
	u.recordOrder(true)
	u.logOrder(created)
	return created, true, nil
}

// claim reserves the order slot for one payment attempt. A released or stale
// claim is taken over by version; a placed order found on the way is returned
// with placed=true.
func (u *OrderUseCase) claim(ctx context.Context, existing, fresh entities.Order) (entities.Order, bool, error) {
	var (
		claimed entities.Order
		err     error
	)
	if existing.ID == "" {
		claimed, err = u.repo.Create(ctx, fresh)
	} else {
		if !u.claimReleased(existing) {
			return entities.Order{}, false, ErrPaymentInProgress
		}
		next := fresh
		next.ID = existing.ID
		next.CreatedAt = existing.CreatedAt
		claimed, err = u.repo.Update(ctx, next, existing.Version)
	}
	if errors.Is(err, entities.ErrConflict) {
		cur, gerr := u.repo.GetByRequestID(ctx, fresh.RequestID)
		if gerr != nil {
			return entities.Order{}, false, gerr
		}
		if cur.ID != "" && cur.Status.Placed() {
			return cur, true, nil
		}
		return entities.Order{}, false, ErrPaymentInProgress
	}
	if err != nil {
		u.logger.Error("claim order slot failed", zap.String("request_id", fresh.RequestID), zap.Error(err))
		return entities.Order{}, false, err
	}
	return claimed, false, nil
}

func (u *OrderUseCase) claimReleased(o entities.Order) bool {
	if o.Status == entities.OrderStatusPaymentFailed {
		return true
	}
	return o.Status == entities.OrderStatusPendingPayment && !u.now().Before(o.UpdatedAt.Add(paymentClaimTTL))
}

// release marks a claim whose charge did not go through, so the buyer can retry.
func (u *OrderUseCase) release(ctx context.Context, claim entities.Order) {
	next := claim.Clone()
	next.Status = entities.OrderStatusPaymentFailed
	next.UpdatedAt = u.now()
	if _, err := u.repo.Update(ctx, next, claim.Version); err != nil {
		u.logger.Warn("release payment claim failed", zap.String("request_id", claim.RequestID), zap.Error(err))
	}
}

// place turns a claim into the RECEIVED order carrying the payment id.
func (u *OrderUseCase) place(ctx context.Context, claim entities.Order, shipping entities.ShippingDetails, paymentID string) (entities.Order, error) {
	now := u.now()
	next := claim.Clone()
	next.Shipping = shipping
	next.PaymentID = strings.TrimSpace(paymentID)
	next.Status = entities.OrderStatusReceived
	next.History = []entities.HistoryEntry{{Date: now, Status: entities.OrderStatusReceived, Description: entities.OrderStatusReceived.Label()}}
	next.CreatedAt = now
	next.UpdatedAt = now

	placed, err := u.repo.Update(ctx, next, claim.Version)
	if err != nil {
		return entities.Order{}, err
	}
	u.recordOrder(true)
	u.logOrder(placed)
	return placed, nil
}

func (u *OrderUseCase) logOrder(o entities.Order) {
	u.logger.Info("order materialized",
		zap.String("order_id", o.ID),
		zap.String("request_id", o.RequestID),
		zap.String("vendor_id", o.VendorID),
		zap.Stringer("total_price", o.TotalPrice),
	)
}

func newOrder(r entities.QuoteRequest, quote entities.VendorQuote, shipping entities.ShippingDetails, now time.Time, status entities.OrderStatus) entities.Order {
	o := entities.Order{
		ID:                    uuid.NewString(),
		RequestID:             r.ID,
		QuoteID:               quote.ID,
		BuyerID:               r.BuyerID,
		VendorID:              quote.VendorID,
		LineItems:             append([]entities.LineItem(nil), r.LineItems...),
		Price:                 quote.Price,
		Fees:                  quote.Fees,
		TotalPrice:            quote.TotalPrice(),
		EstimatedDeliveryDays: quote.EstimatedDeliveryDays,
		Shipping:              shipping,
		Status:                status,
		Version:               1,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if status == entities.OrderStatusReceived {
		o.History = []entities.HistoryEntry{{Date: now, Status: status, Description: status.Label()}}
	}
	return o
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" || !o.Status.Placed() {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) GetByRequestID(ctx context.Context, requestID string) (entities.Order, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Order{}, ErrInvalidRequestID
	}
	o, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" || !o.Status.Placed() {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Order, error) {
	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		return nil, ErrInvalidBuyerID
	}
	all, err := u.repo.ListByBuyerID(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(all))
	for _, o := range all {
		if o.Status.Placed() {
			out = append(out, o)
		}
	}
	return out, nil
}

// AdvanceShipping moves the order along RECEIVED -> PREPARING -> SHIPPING -> DELIVERED.
// Delivery completes the request when it is still APPROVED.
func (u *OrderUseCase) AdvanceShipping(ctx context.Context, actor entities.Actor, orderID string, status entities.OrderStatus, description string) (entities.Order, error) {
	if !entities.ValidOrderStatus(status) {
		return entities.Order{}, ErrInvalidOrderStatus
	}
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if actor.Role != entities.RoleAdmin && (actor.Role != entities.RoleVendor || actor.ID != o.VendorID) {
		return entities.Order{}, fmt.Errorf("%w: only the fulfilling vendor updates shipping", entities.ErrForbidden)
	}
	if !o.Status.CanAdvanceTo(status) {
		return entities.Order{}, fmt.Errorf("%w: order %s -> %s", entities.ErrInvalidTransition, o.Status, status)
	}

	now := u.now()
	version := o.Version
	next := o.Clone()
	description = strings.TrimSpace(description)
	if description == "" {
		description = status.Label()
	}
	next.Status = status
	next.UpdatedAt = now
	next.History = append(next.History, entities.HistoryEntry{Date: now, Status: status, Description: description})

	updated, err := u.repo.Update(ctx, next, version)
	if err != nil {
		u.logger.Warn("advance shipping failed", zap.String("order_id", o.ID), zap.String("target", string(status)), zap.Error(err))
		return entities.Order{}, err
	}
	u.logger.Info("shipping advanced", zap.String("order_id", updated.ID), zap.String("from", string(o.Status)), zap.String("to", string(status)))

	if status == entities.OrderStatusDelivered {
		u.complete(ctx, updated.RequestID, "order delivered")
	}
	return updated, nil
}

// complete moves the request to COMPLETED on behalf of the system. It retries
// version conflicts and leaves a request that already left APPROVED alone.
func (u *OrderUseCase) complete(ctx context.Context, requestID, reason string) {
	for attempt := 0; attempt < completeRetries; attempt++ {
		r, err := u.requests.GetRequest(ctx, requestID)
		if err != nil {
			u.logger.Warn("complete request: load failed", zap.String("request_id", requestID), zap.Error(err))
			return
		}
		if r.Status != entities.RequestStatusApproved {
			return
		}
		_, err = u.requests.CompleteRequest(ctx, entities.SystemActor, requestID, reason)
		if err == nil {
			return
		}
		if !errors.Is(err, entities.ErrConflict) {
			u.logger.Warn("complete request failed", zap.String("request_id", requestID), zap.Error(err))
			return
		}
	}
	u.logger.Warn("complete request: retries exhausted", zap.String("request_id", requestID))
}

func (u *OrderUseCase) recordOrder(created bool) {
	if u.metrics != nil {
		u.metrics.OrderMaterialized(created)
	}
}

func normalizeShipping(s entities.ShippingDetails) (entities.ShippingDetails, error) {
	s.RecipientName = strings.TrimSpace(s.RecipientName)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Address = strings.TrimSpace(s.Address)
	s.PostalCode = strings.TrimSpace(s.PostalCode)
	s.Memo = strings.TrimSpace(s.Memo)
	if s.RecipientName == "" || s.Address == "" {
		return entities.ShippingDetails{}, ErrInvalidShipping
	}
	return s, nil
}

// enrichPaymentPayload pins reference and amount to the accepted quote.
func enrichPaymentPayload(raw json.RawMessage, r entities.QuoteRequest, q entities.VendorQuote) (json.RawMessage, error) {
	req := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPaymentPayload, err)
		}
	}
	req["external_reference"] = r.ID
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Quote request %s, vendor %s", r.ID, q.VendorID)
	}
	req["transaction_amount"] = q.TotalPrice().InexactFloat64()
	return json.Marshal(req)
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
