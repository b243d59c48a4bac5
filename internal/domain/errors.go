package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrCorrupted  = errors.New("data corruption")
	ErrNetwork    = errors.New("network error")
	ErrInternal   = errors.New("internal error")
)

// MsgMissing is the message reported for an absent required field. Presence
// is checked before type, so a missing field never reports a type-mismatch
// message.
const MsgMissing = "missing or invalid"

// Business error codes carried by BusinessError.Code.
const (
	CodeNotFound       = "NOT_FOUND"
	CodeDataCorruption = "DATA_CORRUPTION"
	CodeInternalError  = "INTERNAL_ERROR"
)

// Kind classifies an error into one of the fixed, caller-visible categories.
// The string values are part of the external contract and must not change.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNetwork    Kind = "network"
	KindBusiness   Kind = "business"
)

// ClassifiedError is the closed set of error categories returned by every
// fallible operation. Exactly three types implement it: *FieldErrors,
// *NetworkError, and *BusinessError. Each carries only the fields of its
// own kind. The sealed method keeps the set closed so switches over the
// concrete types stay exhaustive.
type ClassifiedError interface {
	error
	Kind() Kind
	sealed()
}

// Compile-time checks that exactly the three kinds implement ClassifiedError.
var (
	_ ClassifiedError = (*FieldErrors)(nil)
	_ ClassifiedError = (*NetworkError)(nil)
	_ ClassifiedError = (*BusinessError)(nil)
)

// FieldError describes a single independently-failing field. Value holds the
// offending input; for a nested record it holds the nested field errors.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// FieldErrors is a non-empty, ordered list of field-level validation
// failures. Detailed validation collects one entry per failing field;
// fields are never short-circuited at the first failure.
type FieldErrors struct {
	Errors []FieldError
}

// NewFieldErrors builds a validation error from individual field failures.
func NewFieldErrors(errs ...FieldError) *FieldErrors {
	return &FieldErrors{Errors: errs}
}

func (e *FieldErrors) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *FieldErrors) Unwrap() error { return ErrValidation }

// Kind reports KindValidation.
func (e *FieldErrors) Kind() Kind { return KindValidation }

func (e *FieldErrors) sealed() {}

// Has reports whether the list contains an entry for the given field.
func (e *FieldErrors) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// NetworkError describes a failure reaching or understanding an external
// endpoint. It is constructed at transport boundaries; the core never
// produces one itself.
type NetworkError struct {
	Status   int
	Message  string
	Endpoint string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s (status %d, endpoint %s)",
		ErrNetwork.Error(), e.Message, e.Status, e.Endpoint)
}

func (e *NetworkError) Unwrap() error { return ErrNetwork }

// Kind reports KindNetwork.
func (e *NetworkError) Kind() Kind { return KindNetwork }

func (e *NetworkError) sealed() {}

// BusinessError describes an expected domain-rule failure (missing entity,
// corrupted record, recovered internal defect) identified by a stable code.
type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("business error %s: %s", e.Code, e.Message)
}

// Unwrap maps well-known codes onto sentinels so errors.Is keeps working
// for callers that never inspect codes.
func (e *BusinessError) Unwrap() error {
	switch e.Code {
	case CodeNotFound:
		return ErrNotFound
	case CodeDataCorruption:
		return ErrCorrupted
	default:
		return ErrInternal
	}
}

// Kind reports KindBusiness.
func (e *BusinessError) Kind() Kind { return KindBusiness }

func (e *BusinessError) sealed() {}

// NotFound builds the canonical NOT_FOUND business error for an entity id.
func NotFound(id string) *BusinessError {
	return &BusinessError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("user %q does not exist", id),
	}
}

// Corrupted builds the canonical DATA_CORRUPTION business error. It signals
// that the store's own copy failed re-validation; it is non-retriable and
// must be surfaced, never silently repaired.
func Corrupted(id string, detail error) *BusinessError {
	return &BusinessError{
		Code:    CodeDataCorruption,
		Message: fmt.Sprintf("stored user %q failed re-validation", id),
		Details: map[string]any{"cause": detail.Error()},
	}
}

// Internal builds the generic INTERNAL_ERROR business error used when a
// trust-boundary assertion escapes to a top-level handler.
func Internal(cause string) *BusinessError {
	return &BusinessError{
		Code:    CodeInternalError,
		Message: "internal error",
		Details: map[string]any{"cause": cause},
	}
}

// IsValidationError reports whether err is (or wraps) a validation-kind
// classified error.
func IsValidationError(err error) bool {
	var fe *FieldErrors
	return errors.As(err, &fe)
}

// IsNetworkError reports whether err is (or wraps) a network-kind
// classified error.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsBusinessError reports whether err is (or wraps) a business-kind
// classified error.
func IsBusinessError(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}

// Classify narrows an arbitrary error to its ClassifiedError. Unclassified
// errors are wrapped as INTERNAL_ERROR so callers always observe one of the
// three kinds.
func Classify(err error) ClassifiedError {
	var (
		fe *FieldErrors
		ne *NetworkError
		be *BusinessError
	)
	switch {
	case errors.As(err, &fe):
		return fe
	case errors.As(err, &ne):
		return ne
	case errors.As(err, &be):
		return be
	default:
		return Internal(err.Error())
	}
}
