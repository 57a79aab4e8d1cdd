package entities

import "errors"

// Error taxonomy shared by the domain, use cases and repositories.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrConflict           = errors.New("concurrent modification conflict")
	ErrRequestClosed      = errors.New("quote request is closed")
	ErrDuplicateSelection = errors.New("a quote is already selected for this request")
	ErrForbidden          = errors.New("actor not allowed")
)

var (
	ErrRequestNotFound = kindError{msg: "quote request not found", kind: ErrNotFound}
	ErrVendorNotFound  = kindError{msg: "vendor not found", kind: ErrNotFound}
	ErrQuoteNotFound   = kindError{msg: "vendor quote not found", kind: ErrNotFound}
	ErrOrderNotFound   = kindError{msg: "order not found", kind: ErrNotFound}
)

// kindError is a specific error that also matches its broader kind with errors.Is.
type kindError struct {
	msg  string
	kind error
}

func (e kindError) Error() string { return e.msg }

func (e kindError) Unwrap() error { return e.kind }
