package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification via errors.Is.
// Each typed error below unwraps to exactly one of these.
var (
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrStoreFailure        = errors.New("store operation failed")
)

// sanitize removes line breaks from values interpolated into error messages
// so a single log line cannot be split by hostile input.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is required: %s", e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is invalid: %s", e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value fell outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending value and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v",
		e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)",
			e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("object not found: %s", e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError indicates a uniqueness violation, such as a
// duplicate order number or supplier email.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError for the named parameter and identifier.
func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError wrapping an underlying cause.
func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("object already exists: param is: %s, ID is: %s (cause: %s)",
			e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("object already exists: %s", e.ID))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// InvalidTransitionError indicates that an order status change was rejected,
// either because the current status is terminal or because the requested
// target is not reachable from the current status.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError carrying the current and requested statuses.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("invalid status transition: %s -> %s (cause: %s)", e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// StoreError indicates a persistence failure that is not the caller's fault.
// The surrounding transaction has been rolled back when this is returned
// from a mutation path.
type StoreError struct {
	Op    string
	Cause error
}

// NewStoreError creates a StoreError for the named operation wrapping an underlying cause.
func NewStoreError(op string, cause error) *StoreError {
	return &StoreError{Op: op, Cause: cause}
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("store operation failed: %s (cause: %s)", e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("store operation failed: %s", e.Op))
}

func (e *StoreError) Unwrap() error {
	return ErrStoreFailure
}
