package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/domain/lifecycle"
	"b2b_sourcing/internal/domain/quotegen"
	"b2b_sourcing/internal/domain/ranking"
	"b2b_sourcing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidRequestID     = errors.New("invalid request id")
	ErrInvalidVendorID      = errors.New("invalid vendor id")
	ErrInvalidBuyerID       = errors.New("invalid buyer id")
	ErrInvalidLineItems     = errors.New("invalid line items")
	ErrInvalidQuotePrice    = errors.New("invalid quote price")
	ErrInvalidDeliveryDays  = errors.New("invalid estimated delivery days")
	ErrInvalidRequestStatus = errors.New("invalid request status")
	ErrInvalidExpiryWindow  = errors.New("invalid expiry window")
)

const DefaultExpiryWindow = 7 * 24 * time.Hour

// CreateRequestInput is the buyer's request for pricing.
type CreateRequestInput struct {
	LineItems    []entities.LineItem
	ExpiryWindow time.Duration
}

// SubmitQuoteInput is a vendor's quote draft. VendorID defaults to the acting vendor.
type SubmitQuoteInput struct {
	VendorID              string
	Price                 decimal.Decimal
	Fees                  entities.Fees
	EstimatedDeliveryDays int
	Note                  string
	Draft                 bool
}

// QuoteView is one ranked row of a request's quote list.
type QuoteView struct {
	Position int
	Quote    entities.VendorQuote
	Vendor   entities.VendorProfile
}

// IQuoteRequestUseCase is the request/quote store used by buyer, vendor and admin views.
//
// Every read evaluates expiry before returning status; every write is applied as a
// compare-and-set on the request version and fails with entities.ErrConflict when
// another actor got there first.
type IQuoteRequestUseCase interface {
	CreateRequest(ctx context.Context, actor entities.Actor, in CreateRequestInput) (entities.QuoteRequest, error)
	GetRequest(ctx context.Context, id string) (entities.QuoteRequest, error)
	ListAllRequests(ctx context.Context, actor entities.Actor, filter entities.RequestFilter) ([]entities.QuoteRequest, error)
	ListRequestsForVendor(ctx context.Context, vendorID string, status entities.RequestStatus) ([]entities.QuoteRequest, error)
	SubmitQuote(ctx context.Context, actor entities.Actor, requestID string, in SubmitQuoteInput) (entities.VendorQuote, error)
	GenerateQuote(ctx context.Context, requestID, vendorID string) (entities.VendorQuote, error)
	GenerateQuotes(ctx context.Context, requestID string) ([]entities.VendorQuote, error)
	ListQuotes(ctx context.Context, requestID string, mode ranking.Mode) ([]QuoteView, error)
	SelectQuote(ctx context.Context, actor entities.Actor, requestID, vendorID string) (entities.QuoteRequest, error)
	ForceStatus(ctx context.Context, actor entities.Actor, requestID string, status entities.RequestStatus, reason string) (entities.QuoteRequest, error)
	CompleteRequest(ctx context.Context, actor entities.Actor, requestID, reason string) (entities.QuoteRequest, error)
	ListVendors(ctx context.Context) ([]entities.VendorProfile, error)
}

type QuoteRequestUseCase struct {
	repo         interfaces.IQuoteRequestRepository
	vendors      interfaces.IVendorDirectory
	generator    *quotegen.Generator
	metrics      interfaces.IMetricsRecorder
	logger       *zap.Logger
	expiryWindow time.Duration
	now          func() time.Time
}

var _ IQuoteRequestUseCase = (*QuoteRequestUseCase)(nil)

func NewQuoteRequestUseCase(repo interfaces.IQuoteRequestRepository, vendors interfaces.IVendorDirectory, generator *quotegen.Generator, expiryWindow time.Duration, logger *zap.Logger) *QuoteRequestUseCase {
	if expiryWindow <= 0 {
		expiryWindow = DefaultExpiryWindow
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteRequestUseCase{
		repo:         repo,
		vendors:      vendors,
		generator:    generator,
		logger:       logger.Named("quote.usecase"),
		expiryWindow: expiryWindow,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the wall clock, mostly for tests.
func (u *QuoteRequestUseCase) WithClock(now func() time.Time) *QuoteRequestUseCase {
	u.now = now
	return u
}

func (u *QuoteRequestUseCase) WithMetrics(m interfaces.IMetricsRecorder) *QuoteRequestUseCase {
	u.metrics = m
	return u
}

func (u *QuoteRequestUseCase) CreateRequest(ctx context.Context, actor entities.Actor, in CreateRequestInput) (entities.QuoteRequest, error) {
	if actor.Role != entities.RoleBuyer {
		return entities.QuoteRequest{}, fmt.Errorf("%w: only buyers create quote requests", entities.ErrForbidden)
	}
	buyerID := strings.TrimSpace(actor.ID)
	if buyerID == "" {
		return entities.QuoteRequest{}, ErrInvalidBuyerID
	}
	items, err := normalizeLineItems(in.LineItems)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	window := in.ExpiryWindow
	if window < 0 {
		return entities.QuoteRequest{}, ErrInvalidExpiryWindow
	}
	if window == 0 {
		window = u.expiryWindow
	}

	now := u.now()
	r := entities.QuoteRequest{
		ID:        uuid.NewString(),
		BuyerID:   buyerID,
		LineItems: items,
		Status:    entities.RequestStatusPending,
		Quotes:    []entities.VendorQuote{},
		History:   []entities.StatusChange{},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(window),
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		u.logger.Error("create request failed", zap.String("buyer_id", buyerID), zap.Error(err))
		return entities.QuoteRequest{}, err
	}
	u.logger.Info("request created", zap.String("request_id", created.ID), zap.String("buyer_id", buyerID), zap.Int("line_items", len(items)))
	return created, nil
}

func normalizeLineItems(items []entities.LineItem) ([]entities.LineItem, error) {
	if len(items) == 0 {
		return nil, ErrInvalidLineItems
	}
	out := make([]entities.LineItem, 0, len(items))
	for i, li := range items {
		li.ProductID = strings.TrimSpace(li.ProductID)
		li.Name = strings.TrimSpace(li.Name)
		if li.ProductID == "" || li.Quantity <= 0 || li.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: item %d", ErrInvalidLineItems, i)
		}
		out = append(out, li)
	}
	return out, nil
}

func (u *QuoteRequestUseCase) GetRequest(ctx context.Context, id string) (entities.QuoteRequest, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	lifecycle.Expire(&r, u.now())
	return r, nil
}

// ListAllRequests serves the admin view. Buyers get their own requests only.
func (u *QuoteRequestUseCase) ListAllRequests(ctx context.Context, actor entities.Actor, filter entities.RequestFilter) ([]entities.QuoteRequest, error) {
	switch actor.Role {
	case entities.RoleAdmin:
	case entities.RoleBuyer:
		filter.BuyerID = actor.ID
	default:
		return nil, fmt.Errorf("%w: %s cannot list requests", entities.ErrForbidden, actor.Role)
	}
	if filter.Status != "" && !entities.ValidRequestStatus(filter.Status) {
		return nil, ErrInvalidRequestStatus
	}

	all, err := u.repo.List(ctx, entities.RequestFilter{BuyerID: strings.TrimSpace(filter.BuyerID)})
	if err != nil {
		return nil, err
	}
	now := u.now()
	out := make([]entities.QuoteRequest, 0, len(all))
	for _, r := range all {
		lifecycle.Expire(&r, now)
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.VendorID != "" && !r.HasQuoteFrom(filter.VendorID) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// ListRequestsForVendor returns requests open for bidding plus every request the
// vendor has quoted on. Other vendors' quotes are stripped.
func (u *QuoteRequestUseCase) ListRequestsForVendor(ctx context.Context, vendorID string, status entities.RequestStatus) ([]entities.QuoteRequest, error) {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return nil, ErrInvalidVendorID
	}
	if status != "" && !entities.ValidRequestStatus(status) {
		return nil, ErrInvalidRequestStatus
	}
	if _, err := u.vendor(ctx, vendorID); err != nil {
		return nil, err
	}

	all, err := u.repo.List(ctx, entities.RequestFilter{})
	if err != nil {
		return nil, err
	}
	now := u.now()
	out := make([]entities.QuoteRequest, 0, len(all))
	for _, r := range all {
		lifecycle.Expire(&r, now)
		if r.Status != entities.RequestStatusPending && !r.HasQuoteFrom(vendorID) {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		own := make([]entities.VendorQuote, 0, 1)
		for _, q := range r.Quotes {
			if q.VendorID == vendorID {
				own = append(own, q)
			}
		}
		r.Quotes = own
		out = append(out, r)
	}
	return out, nil
}

func (u *QuoteRequestUseCase) SubmitQuote(ctx context.Context, actor entities.Actor, requestID string, in SubmitQuoteInput) (entities.VendorQuote, error) {
	vendorID := strings.TrimSpace(in.VendorID)
	if vendorID == "" {
		vendorID = strings.TrimSpace(actor.ID)
	}
	if vendorID == "" {
		return entities.VendorQuote{}, ErrInvalidVendorID
	}
	if err := validateQuoteInput(in); err != nil {
		return entities.VendorQuote{}, err
	}
	if _, err := u.vendor(ctx, vendorID); err != nil {
		return entities.VendorQuote{}, err
	}

	q := entities.VendorQuote{
		ID:                    uuid.NewString(),
		VendorID:              vendorID,
		Price:                 in.Price,
		Fees:                  in.Fees,
		EstimatedDeliveryDays: in.EstimatedDeliveryDays,
		Note:                  strings.TrimSpace(in.Note),
		Status:                entities.QuoteStatusSubmitted,
	}
	if in.Draft {
		q.Status = entities.QuoteStatusDraft
	}

	var stored entities.VendorQuote
	_, err := u.mutate(ctx, requestID, func(r *entities.QuoteRequest, now time.Time) error {
		var err error
		stored, err = lifecycle.SubmitQuote(r, q, actor, now)
		return err
	})
	if err != nil {
		u.logger.Warn("submit quote failed", zap.String("request_id", requestID), zap.String("vendor_id", vendorID), zap.Error(err))
		return entities.VendorQuote{}, err
	}
	if u.metrics != nil {
		u.metrics.QuoteSubmitted(string(stored.Status))
	}
	u.logger.Info("quote submitted",
		zap.String("request_id", stored.RequestID),
		zap.String("vendor_id", vendorID),
		zap.String("status", string(stored.Status)),
		zap.Stringer("total_price", stored.TotalPrice()),
	)
	return stored, nil
}

func validateQuoteInput(in SubmitQuoteInput) error {
	if in.Price.IsNegative() || (!in.Draft && !in.Price.IsPositive()) {
		return ErrInvalidQuotePrice
	}
	for _, fee := range []decimal.Decimal{in.Fees.Service, in.Fees.Shipping, in.Fees.Tax, in.Fees.Other} {
		if fee.IsNegative() {
			return fmt.Errorf("%w: negative fee", ErrInvalidQuotePrice)
		}
	}
	if in.EstimatedDeliveryDays < 0 || (!in.Draft && in.EstimatedDeliveryDays == 0) {
		return ErrInvalidDeliveryDays
	}
	return nil
}

// GenerateQuote prices the request for one vendor without storing anything.
func (u *QuoteRequestUseCase) GenerateQuote(ctx context.Context, requestID, vendorID string) (entities.VendorQuote, error) {
	r, err := u.GetRequest(ctx, requestID)
	if err != nil {
		return entities.VendorQuote{}, err
	}
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return entities.VendorQuote{}, ErrInvalidVendorID
	}
	v, err := u.vendor(ctx, vendorID)
	if err != nil {
		return entities.VendorQuote{}, err
	}
	return u.generator.Generate(r, v, r.Baseline(), u.now())
}

// GenerateQuotes returns one candidate quote per eligible vendor, in directory order.
func (u *QuoteRequestUseCase) GenerateQuotes(ctx context.Context, requestID string) ([]entities.VendorQuote, error) {
	r, err := u.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	vendors, err := u.vendors.List(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()
	out := make([]entities.VendorQuote, 0, len(vendors))
	for _, v := range vendors {
		if !quotegen.Eligible(v) {
			continue
		}
		q, err := u.generator.Generate(r, v, r.Baseline(), now)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// ListQuotes returns the request's non-draft quotes through the ranking policy.
func (u *QuoteRequestUseCase) ListQuotes(ctx context.Context, requestID string, mode ranking.Mode) ([]QuoteView, error) {
	if mode == "" {
		mode = ranking.ModeDefault
	}
	r, err := u.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	visible := make([]entities.VendorQuote, 0, len(r.Quotes))
	profiles := make(map[string]entities.VendorProfile, len(r.Quotes))
	for _, q := range r.Quotes {
		if q.Status == entities.QuoteStatusDraft {
			continue
		}
		v, err := u.vendor(ctx, q.VendorID)
		if err != nil {
			return nil, err
		}
		profiles[q.VendorID] = v
		visible = append(visible, q)
	}

	ranked := ranking.Rank(visible, profiles, mode)
	out := make([]QuoteView, 0, len(ranked))
	for i, q := range ranked {
		out = append(out, QuoteView{Position: i + 1, Quote: q, Vendor: profiles[q.VendorID]})
	}
	return out, nil
}

func (u *QuoteRequestUseCase) SelectQuote(ctx context.Context, actor entities.Actor, requestID, vendorID string) (entities.QuoteRequest, error) {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return entities.QuoteRequest{}, ErrInvalidVendorID
	}
	updated, err := u.mutate(ctx, requestID, func(r *entities.QuoteRequest, now time.Time) error {
		_, err := lifecycle.SelectQuote(r, vendorID, actor, now)
		return err
	})
	if err != nil {
		u.logger.Warn("select quote failed", zap.String("request_id", requestID), zap.String("vendor_id", vendorID), zap.Error(err))
		return entities.QuoteRequest{}, err
	}
	u.logger.Info("quote selected", zap.String("request_id", updated.ID), zap.String("vendor_id", vendorID), zap.String("actor", string(actor.Role)))
	return updated, nil
}

func (u *QuoteRequestUseCase) ForceStatus(ctx context.Context, actor entities.Actor, requestID string, status entities.RequestStatus, reason string) (entities.QuoteRequest, error) {
	if !entities.ValidRequestStatus(status) {
		return entities.QuoteRequest{}, ErrInvalidRequestStatus
	}
	updated, err := u.mutate(ctx, requestID, func(r *entities.QuoteRequest, now time.Time) error {
		return lifecycle.Force(r, status, actor, now, u.expiryWindow, strings.TrimSpace(reason))
	})
	if err != nil {
		u.logger.Warn("force status failed", zap.String("request_id", requestID), zap.String("target", string(status)), zap.Error(err))
		return entities.QuoteRequest{}, err
	}
	u.logger.Info("status forced", zap.String("request_id", updated.ID), zap.String("status", string(updated.Status)), zap.String("admin_id", actor.ID))
	return updated, nil
}

func (u *QuoteRequestUseCase) CompleteRequest(ctx context.Context, actor entities.Actor, requestID, reason string) (entities.QuoteRequest, error) {
	return u.mutate(ctx, requestID, func(r *entities.QuoteRequest, now time.Time) error {
		return lifecycle.Complete(r, actor, now, reason)
	})
}

func (u *QuoteRequestUseCase) ListVendors(ctx context.Context) ([]entities.VendorProfile, error) {
	return u.vendors.List(ctx)
}

func (u *QuoteRequestUseCase) load(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidRequestID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if r.ID == "" {
		return entities.QuoteRequest{}, entities.ErrRequestNotFound
	}
	return r, nil
}

func (u *QuoteRequestUseCase) vendor(ctx context.Context, id string) (entities.VendorProfile, error) {
	v, err := u.vendors.GetByID(ctx, id)
	if err != nil {
		return entities.VendorProfile{}, err
	}
	if v.ID == "" {
		return entities.VendorProfile{}, fmt.Errorf("%w: %s", entities.ErrVendorNotFound, id)
	}
	return v, nil
}

// mutate is the single write path: load, apply, compare-and-set on the loaded
// version. A lost race surfaces as entities.ErrConflict and nothing is applied.
//
// When apply fails only because the deadline has passed, the EXPIRED transition
// it recorded is still stored.
func (u *QuoteRequestUseCase) mutate(ctx context.Context, id string, apply func(r *entities.QuoteRequest, now time.Time) error) (entities.QuoteRequest, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	version := r.Version
	seen := len(r.History)
	working := r.Clone()

	if applyErr := apply(&working, u.now()); applyErr != nil {
		if r.Status == entities.RequestStatusPending && working.Status == entities.RequestStatusExpired {
			if _, err := u.repo.Update(ctx, working, version); err != nil {
				u.logger.Warn("persist expiry failed", zap.String("request_id", r.ID), zap.Error(err))
			} else {
				u.observe(working.History[seen:])
			}
		}
		return entities.QuoteRequest{}, applyErr
	}

	updated, err := u.repo.Update(ctx, working, version)
	if errors.Is(err, entities.ErrConflict) && r.Status == entities.RequestStatusPending {
		return entities.QuoteRequest{}, u.conflictCause(ctx, id, err)
	}
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	u.observe(updated.History[seen:])
	return updated, nil
}

// conflictCause reloads a request that lost a version race while PENDING and
// reports ErrRequestClosed when the winning write closed it.
func (u *QuoteRequestUseCase) conflictCause(ctx context.Context, id string, conflict error) error {
	cur, err := u.load(ctx, id)
	if err != nil {
		return conflict
	}
	lifecycle.Expire(&cur, u.now())
	if cur.Status == entities.RequestStatusPending {
		return conflict
	}
	return fmt.Errorf("%w: request is now %s: %w", entities.ErrRequestClosed, cur.Status, conflict)
}

func (u *QuoteRequestUseCase) observe(changes []entities.StatusChange) {
	for _, c := range changes {
		u.logger.Info("request transition",
			zap.String("from", string(c.From)),
			zap.String("to", string(c.To)),
			zap.String("actor", string(c.Actor.Role)),
		)
		if u.metrics != nil {
			u.metrics.RequestTransition(string(c.From), string(c.To))
		}
	}
}
