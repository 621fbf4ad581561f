package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so that callers (in particular the
// HTTP layer) can switch on it instead of inspecting message text.
type Kind int

const (
	// KindUnknown is the zero value for errors that carry no classification.
	KindUnknown Kind = iota
	// KindValidation indicates a field-level failure (empty description,
	// non-positive amount, over-long string, malformed date).
	KindValidation
	// KindRuleViolation indicates a cross-entity business rule failure
	// (incompatible category purpose, minor attempting revenue, category in use).
	KindRuleViolation
	// KindNotFound indicates a referenced resource does not exist.
	KindNotFound
	// KindPersistence indicates the storage collaborator failed.
	KindPersistence
)

// Sentinel errors usable with errors.Is. An *AppError matches the sentinel
// of its own kind, so both styles of checking work.
var (
	ErrValidation    = errors.New("validation error")
	ErrRuleViolation = errors.New("business rule violation")
	ErrNotFound      = errors.New("resource not found")
	ErrPersistence   = errors.New("persistence failure")
)

// AppError is the single error type crossing component boundaries for
// expected business conditions.
type AppError struct {
	Kind    Kind
	Warning bool // warning-grade rejection, surfaced as 409 + "warning" envelope
	Message string
	Err     error // wrapped cause, if any
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an AppError against the sentinel of its kind.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrRuleViolation:
		return e.Kind == KindRuleViolation
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrPersistence:
		return e.Kind == KindPersistence
	}
	return false
}

// NewValidation creates a field-level validation error.
func NewValidation(format string, args ...any) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewRuleViolation creates a business-rule rejection.
func NewRuleViolation(format string, args ...any) *AppError {
	return &AppError{Kind: KindRuleViolation, Message: fmt.Sprintf(format, args...)}
}

// NewWarning creates a warning-grade business-rule rejection. The operation
// is still blocked; the flag only changes how the transport surfaces it.
func NewWarning(format string, args ...any) *AppError {
	return &AppError{Kind: KindRuleViolation, Warning: true, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound creates a not-found error for the named resource.
func NewNotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

// NewPersistence wraps a storage failure. The underlying message is kept so
// the caller sees what actually went wrong; no retry is attempted.
func NewPersistence(err error) *AppError {
	return &AppError{Kind: KindPersistence, Message: "persistence failure", Err: err}
}

// KindOf extracts the Kind from an error chain, or KindUnknown.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsWarning reports whether the error chain carries a warning-grade rejection.
func IsWarning(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Warning
	}
	return false
}
