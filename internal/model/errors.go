package model

import "errors"

// Kind classifies an application failure. The HTTP layer maps each kind to
// one response status.
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindForbidden       Kind = "forbidden"
	KindInvalidInput    Kind = "invalid_input"
	KindPaymentRequired Kind = "payment_required"
)

// Error is a tagged application error.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so callers can write
// errors.Is(err, model.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrNotFound        = &Error{Kind: KindNotFound, Message: "not found"}
	ErrForbidden       = &Error{Kind: KindForbidden, Message: "forbidden"}
	ErrInvalidInput    = &Error{Kind: KindInvalidInput, Message: "invalid input"}
	ErrPaymentRequired = &Error{Kind: KindPaymentRequired, Message: "payment required"}
)

// NotFound reports that a referenced entity does not exist.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Forbidden reports that the entity exists but policy disallows the action.
func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// InvalidInput reports a malformed caller-supplied value.
func InvalidInput(msg string, cause error) error {
	return &Error{Kind: KindInvalidInput, Message: msg, Cause: cause}
}

// PaymentRequired reports that the user's ticket does not cover the resource.
func PaymentRequired(msg string) error {
	return &Error{Kind: KindPaymentRequired, Message: msg}
}

// KindOf returns the kind of the first *Error in err's chain, or "" when
// err is not an application error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
