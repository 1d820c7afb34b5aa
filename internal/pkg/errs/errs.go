package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrObjectNotFound    = errors.New("object not found")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrMissingStop       = errors.New("missing stop")
	ErrInvalidPayload    = errors.New("invalid payload")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrConflict          = errors.New("conflict")
	ErrTransientStorage  = errors.New("transient storage failure")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates a required value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a referenced object does not exist.
// A fleet mismatch is reported through this same type so that cross-tenant
// existence is never leaked to the caller.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named reference.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// IllegalTransitionError indicates the requested action is not legal for the
// load's current status. The message names both the attempted action and the
// actual status so it can back user-facing diagnostics directly.
type IllegalTransitionError struct {
	Action        string
	CurrentStatus string
	Allowed       []string
}

// NewIllegalTransitionError creates an IllegalTransitionError for an action
// attempted from a status outside its allowed set.
func NewIllegalTransitionError(action, currentStatus string, allowed ...string) *IllegalTransitionError {
	return &IllegalTransitionError{
		Action:        action,
		CurrentStatus: currentStatus,
		Allowed:       allowed,
	}
}

func (e *IllegalTransitionError) Error() string {
	if len(e.Allowed) > 0 {
		return sanitize(fmt.Sprintf("%s: cannot %s from status %s, must be %s",
			ErrIllegalTransition, e.Action, e.CurrentStatus, strings.Join(e.Allowed, " or ")))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s from status %s",
		ErrIllegalTransition, e.Action, e.CurrentStatus))
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// MissingStopError indicates a stop-completing action found no stop of the
// expected type on the load. This is malformed load data, not a user error,
// and is surfaced distinctly from IllegalTransitionError for that reason.
type MissingStopError struct {
	StopType string
	LoadID   string
}

// NewMissingStopError creates a MissingStopError for the given stop type.
func NewMissingStopError(stopType, loadID string) *MissingStopError {
	return &MissingStopError{StopType: stopType, LoadID: loadID}
}

func (e *MissingStopError) Error() string {
	return sanitize(fmt.Sprintf("%s: load %s has no stop of type %s",
		ErrMissingStop, e.LoadID, e.StopType))
}

func (e *MissingStopError) Unwrap() error {
	return ErrMissingStop
}

// InvalidPayloadError indicates a required action payload field is missing or
// malformed. This is a caller bug or stale form, never retried.
type InvalidPayloadError struct {
	ParamName string
}

// NewInvalidPayloadError creates an InvalidPayloadError for the named field.
func NewInvalidPayloadError(paramName string) *InvalidPayloadError {
	return &InvalidPayloadError{ParamName: paramName}
}

func (e *InvalidPayloadError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrInvalidPayload, e.ParamName))
}

func (e *InvalidPayloadError) Unwrap() error {
	return ErrInvalidPayload
}

// ForbiddenError indicates the actor lacks the role or ownership an action
// requires. Security-relevant: logged by callers, never retried, never
// presented as a transient condition.
type ForbiddenError struct {
	Reason string
}

// NewForbiddenError creates a ForbiddenError with a diagnostic reason.
func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrForbidden, e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// UnauthenticatedError indicates no actor identity was supplied at all,
// as opposed to an identity that fails an ownership or role check.
type UnauthenticatedError struct {
	Reason string
}

// NewUnauthenticatedError creates an UnauthenticatedError with a diagnostic reason.
func NewUnauthenticatedError(reason string) *UnauthenticatedError {
	return &UnauthenticatedError{Reason: reason}
}

func (e *UnauthenticatedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrUnauthenticated, e.Reason))
}

func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}

// ConflictError indicates an atomic write was rejected because the document
// changed between the authoritative read and the write. The caller may refetch
// and retry the whole action once; the write itself is never blindly retried.
type ConflictError struct {
	Entity string
	ID     string
}

// NewConflictError creates a ConflictError for the given entity.
func NewConflictError(entity, id string) *ConflictError {
	return &ConflictError{Entity: entity, ID: id}
}

func (e *ConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s was modified since it was read", ErrConflict, e.Entity, e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// TransientStorageError indicates the backing store failed in a way that may
// succeed on retry (network partition, unavailability). The orchestrator
// retries these with bounded exponential backoff; no other error kind is
// ever retried.
type TransientStorageError struct {
	Op    string
	Cause error
}

// NewTransientStorageError creates a TransientStorageError for the named
// storage operation, wrapping the driver-level cause.
func NewTransientStorageError(op string, cause error) *TransientStorageError {
	return &TransientStorageError{Op: op, Cause: cause}
}

func (e *TransientStorageError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrTransientStorage, e.Op, e.Cause))
}

func (e *TransientStorageError) Unwrap() error {
	return ErrTransientStorage
}
