// Package errs provides the standardized error taxonomy for the load lifecycle
// application. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package defines two groups of errors:
//
// Construction errors, used by value-object and command constructors:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ObjectNotFoundError: a referenced object does not exist (or is outside
//     the caller's fleet, which is reported identically)
//
// Lifecycle errors, produced by the transition engines, authorization guards,
// and the persistence layer:
//   - IllegalTransitionError: the requested action is not legal for the load's
//     current status; terminal, never retried
//   - MissingStopError: the load has no stop of the type a stop-completing
//     action requires; indicates malformed load data, not a user error
//   - InvalidPayloadError: a required action payload field is missing
//   - ForbiddenError: the actor lacks the required role or ownership
//   - UnauthenticatedError: no actor identity was supplied at all
//   - ConflictError: an atomic write was rejected because the document changed
//     since it was read
//   - TransientStorageError: the store was unreachable or failed transiently;
//     the only error kind the orchestrator is allowed to retry
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrIllegalTransition)
//   - A struct type with fields for error details
//   - A constructor function
//   - Error() for formatting and Unwrap() to the sentinel, so call sites can
//     classify with errors.Is without losing the original message
//
// The distinction between error kinds is load-bearing: authorization failures
// map to different user-facing messages and retry policies than business-rule
// failures, and only transient storage failures may ever be retried.
package errs
