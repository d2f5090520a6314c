package domain

import "errors"

// Error kinds. Callers match them with errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrConflict          = errors.New("conflict")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInternal          = errors.New("internal error")
)

// Error carries a user-facing message. Err holds the underlying cause, which
// is for logs only and never part of Error().
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

func Unauthorized(msg string) error {
	return &Error{Kind: ErrUnauthorized, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func InsufficientStock(productName string) error {
	return &Error{Kind: ErrInsufficientStock, Message: "not enough stock for " + productName}
}

func Internal(msg string, cause error) error {
	return &Error{Kind: ErrInternal, Message: msg, Err: cause}
}

// IsDomain reports whether err already belongs to the taxonomy.
func IsDomain(err error) bool {
	var de *Error
	return errors.As(err, &de)
}

// AsInternal passes domain errors through and wraps anything else as an
// internal error with msg.
func AsInternal(err error, msg string) error {
	if err == nil || IsDomain(err) {
		return err
	}
	return Internal(msg, err)
}
