package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classify every failure the core can produce.
// Callers match them with errors.Is to decide how to react:
// ErrTransient is the only kind safe to retry unchanged.
var (
	ErrObjectNotFound  = errors.New("object not found")
	ErrForbidden       = errors.New("operation forbidden")
	ErrInvalidState    = errors.New("operation not allowed in current state")
	ErrConflict        = errors.New("operation conflicts with existing state")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrValueIsRequired = errors.New("value is required")
	ErrTransient       = errors.New("transient storage failure")
)

// sanitize removes newlines from values before they are embedded in
// error messages, keeping log lines single-line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError is returned when an entity id does not resolve
// to a stored object.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given
// parameter and id.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ForbiddenError is returned when the caller lacks ownership of, or the
// role required by, the requested operation.
type ForbiddenError struct {
	CallerID string
	Reason   string
}

// NewForbiddenError creates a ForbiddenError naming the caller and the
// failed precondition.
func NewForbiddenError(callerID string, reason string) *ForbiddenError {
	return &ForbiddenError{CallerID: callerID, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: caller is: %s (%s)", ErrForbidden, sanitize(e.CallerID), sanitize(e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidStateError is returned when an operation is not legal for the
// current status of the target object. CurrentState lets the caller
// report what the object actually was.
type InvalidStateError struct {
	ParamName    string
	CurrentState string
	Cause        error
}

// NewInvalidStateError creates an InvalidStateError for the given
// parameter and its current state.
func NewInvalidStateError(paramName string, currentState string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, CurrentState: currentState}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an
// underlying cause.
func NewInvalidStateErrorWithCause(paramName string, currentState string, cause error) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, CurrentState: currentState, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is in state %s (cause: %s)",
			ErrInvalidState, e.ParamName, sanitize(e.CurrentState), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s is in state %s", ErrInvalidState, e.ParamName, sanitize(e.CurrentState))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ConflictError is returned when an operation collides with existing
// state: a shopkeeper already holding an active order, or a consolidation
// batch spanning more than one zone. ConflictingID carries the id of the
// colliding object (the active order, or the required zone) so the caller
// can correct the request and retry.
type ConflictError struct {
	ParamName     string
	ConflictingID string
	Detail        string
}

// NewConflictError creates a ConflictError pointing at the colliding object.
func NewConflictError(paramName string, conflictingID string, detail string) *ConflictError {
	return &ConflictError{ParamName: paramName, ConflictingID: conflictingID, Detail: detail}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s conflicts with %s (%s)",
		ErrConflict, e.ParamName, sanitize(e.ConflictingID), sanitize(e.Detail))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// ValueIsInvalidError is returned when a supplied value is malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// TransientError is returned when the store is unavailable or timed out.
// The request did not take effect and may be retried unchanged.
type TransientError struct {
	Operation string
	Cause     error
}

// NewTransientError creates a TransientError for the given store operation.
func NewTransientError(operation string, cause error) *TransientError {
	return &TransientError{Operation: operation, Cause: cause}
}

func (e *TransientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrTransient, e.Operation, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrTransient, e.Operation)
}

func (e *TransientError) Unwrap() error {
	return ErrTransient
}
