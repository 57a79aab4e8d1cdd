// Package lifecycle is the quote request state machine.
//
// Every operation mutates a request document in place and never touches storage;
// callers persist the result with a version precondition so that a transition and
// its side effects land as a single write.
package lifecycle

import (
	"fmt"
	"slices"
	"time"

	"b2b_sourcing/internal/domain/entities"
)

type edge struct {
	from entities.RequestStatus
	to   entities.RequestStatus
}

// transitions lists every legal edge and the roles allowed to trigger it.
var transitions = map[edge][]entities.Role{
	{entities.RequestStatusPending, entities.RequestStatusApproved}:   {entities.RoleBuyer, entities.RoleAdmin},
	{entities.RequestStatusPending, entities.RequestStatusRejected}:   {entities.RoleAdmin},
	{entities.RequestStatusPending, entities.RequestStatusExpired}:    {entities.RoleSystem},
	{entities.RequestStatusApproved, entities.RequestStatusCompleted}: {entities.RoleSystem, entities.RoleAdmin},
	{entities.RequestStatusRejected, entities.RequestStatusPending}:   {entities.RoleAdmin},
	{entities.RequestStatusExpired, entities.RequestStatusPending}:    {entities.RoleAdmin},
}

// Check validates a single edge for an actor.
func Check(from, to entities.RequestStatus, actor entities.Actor) error {
	roles, ok := transitions[edge{from, to}]
	if !ok {
		return invalid(from, to)
	}
	if !slices.Contains(roles, actor.Role) {
		return fmt.Errorf("%w: %s cannot move request %s -> %s", entities.ErrForbidden, actor.Role, from, to)
	}
	return nil
}

func invalid(from, to entities.RequestStatus) error {
	if from != entities.RequestStatusPending {
		return fmt.Errorf("%w: %w: %s -> %s", entities.ErrRequestClosed, entities.ErrInvalidTransition, from, to)
	}
	return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, from, to)
}

// IsExpired reports whether r has passed its deadline while still open.
func IsExpired(r entities.QuoteRequest, now time.Time) bool {
	if r.Status != entities.RequestStatusPending || !now.After(r.ExpiresAt) {
		return false
	}
	_, selected := r.SelectedQuote()
	return !selected
}

// Expire applies the lazy PENDING -> EXPIRED transition. It reports whether r changed.
func Expire(r *entities.QuoteRequest, now time.Time) bool {
	if !IsExpired(*r, now) {
		return false
	}
	record(r, entities.RequestStatusExpired, entities.SystemActor, now, "quote window elapsed")
	return true
}

// SubmitQuote stores q on r, replacing the vendor's previous DRAFT or SUBMITTED quote.
// The replacement keeps the original quote id and submission position.
func SubmitQuote(r *entities.QuoteRequest, q entities.VendorQuote, actor entities.Actor, now time.Time) (entities.VendorQuote, error) {
	if actor.Role != entities.RoleVendor || actor.ID != q.VendorID {
		return entities.VendorQuote{}, fmt.Errorf("%w: only vendor %s may submit this quote", entities.ErrForbidden, q.VendorID)
	}
	Expire(r, now)
	if r.Status != entities.RequestStatusPending {
		return entities.VendorQuote{}, closed(r.Status)
	}

	q.RequestID = r.ID
	q.UpdatedAt = now
	q.SubmittedAt = now
	if q.Status != entities.QuoteStatusDraft {
		q.Status = entities.QuoteStatusSubmitted
	}

	if i := r.QuoteByVendor(q.VendorID); i >= 0 {
		prev := r.Quotes[i]
		if prev.Status != entities.QuoteStatusDraft && prev.Status != entities.QuoteStatusSubmitted {
			return entities.VendorQuote{}, fmt.Errorf("%w: quote is %s", entities.ErrInvalidTransition, prev.Status)
		}
		q.ID = prev.ID
		q.Sequence = prev.Sequence
		r.Quotes[i] = q
	} else {
		q.Sequence = r.NextQuoteSeq
		r.NextQuoteSeq++
		r.Quotes = append(r.Quotes, q)
	}
	r.UpdatedAt = now
	return q, nil
}

// SelectQuote accepts the vendor's SUBMITTED quote, rejects every other SUBMITTED
// quote and approves the request.
func SelectQuote(r *entities.QuoteRequest, vendorID string, actor entities.Actor, now time.Time) (entities.VendorQuote, error) {
	if actor.Role == entities.RoleBuyer && actor.ID != r.BuyerID {
		return entities.VendorQuote{}, fmt.Errorf("%w: request belongs to another buyer", entities.ErrForbidden)
	}
	Expire(r, now)
	if sel, ok := r.SelectedQuote(); ok {
		return entities.VendorQuote{}, fmt.Errorf("%w: vendor %s", entities.ErrDuplicateSelection, sel.VendorID)
	}
	if err := Check(r.Status, entities.RequestStatusApproved, actor); err != nil {
		return entities.VendorQuote{}, err
	}

	i := r.QuoteByVendor(vendorID)
	if i < 0 || r.Quotes[i].Status != entities.QuoteStatusSubmitted {
		return entities.VendorQuote{}, fmt.Errorf("%w: no submitted quote from vendor %s", entities.ErrQuoteNotFound, vendorID)
	}

	for j := range r.Quotes {
		switch {
		case j == i:
			r.Quotes[j].Status = entities.QuoteStatusSelected
			r.Quotes[j].UpdatedAt = now
		case r.Quotes[j].Status == entities.QuoteStatusSubmitted:
			r.Quotes[j].Status = entities.QuoteStatusRejected
			r.Quotes[j].UpdatedAt = now
		}
	}
	record(r, entities.RequestStatusApproved, actor, now, "quote selected from vendor "+vendorID)
	return r.Quotes[i], nil
}

// Reject closes a PENDING request without a winner.
func Reject(r *entities.QuoteRequest, actor entities.Actor, now time.Time, reason string) error {
	Expire(r, now)
	if err := Check(r.Status, entities.RequestStatusRejected, actor); err != nil {
		return err
	}
	record(r, entities.RequestStatusRejected, actor, now, reason)
	return nil
}

// Reset reopens a REJECTED or EXPIRED request. A deadline already in the past is
// pushed out by window so the reopened request does not expire on the next read.
func Reset(r *entities.QuoteRequest, actor entities.Actor, now time.Time, window time.Duration, reason string) error {
	Expire(r, now)
	if err := Check(r.Status, entities.RequestStatusPending, actor); err != nil {
		return err
	}
	if !r.ExpiresAt.After(now) && window > 0 {
		r.ExpiresAt = now.Add(window)
	}
	record(r, entities.RequestStatusPending, actor, now, reason)
	return nil
}

// Complete closes an APPROVED request once its order is paid or delivered.
func Complete(r *entities.QuoteRequest, actor entities.Actor, now time.Time, reason string) error {
	if err := Check(r.Status, entities.RequestStatusCompleted, actor); err != nil {
		return err
	}
	record(r, entities.RequestStatusCompleted, actor, now, reason)
	return nil
}

// Force is the admin override entry point.
func Force(r *entities.QuoteRequest, target entities.RequestStatus, actor entities.Actor, now time.Time, window time.Duration, reason string) error {
	if actor.Role != entities.RoleAdmin {
		return fmt.Errorf("%w: status override requires admin", entities.ErrForbidden)
	}
	switch target {
	case entities.RequestStatusPending:
		return Reset(r, actor, now, window, reason)
	case entities.RequestStatusRejected:
		return Reject(r, actor, now, reason)
	case entities.RequestStatusCompleted:
		return Complete(r, actor, now, reason)
	default:
		return invalid(r.Status, target)
	}
}

func closed(status entities.RequestStatus) error {
	if status.Terminal() {
		return fmt.Errorf("%w: %w: status %s", entities.ErrRequestClosed, entities.ErrInvalidTransition, status)
	}
	return fmt.Errorf("%w: status %s", entities.ErrRequestClosed, status)
}

func record(r *entities.QuoteRequest, to entities.RequestStatus, actor entities.Actor, now time.Time, reason string) {
	r.History = append(r.History, entities.StatusChange{
		At:     now,
		From:   r.Status,
		To:     to,
		Actor:  actor,
		Reason: reason,
	})
	r.Status = to
	r.UpdatedAt = now
}
