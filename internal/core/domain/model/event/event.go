package event

import (
	"errors"
	"time"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through the NewEvent constructor.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Type identifies one kind of audit event. The set is closed: adding a type
// requires updating every switch over the vocabulary, including the payload
// codec in payload.go.
type Type string

const (
	TypeLoadCreated      Type = "LOAD_CREATED"
	TypeLoadAssigned     Type = "LOAD_ASSIGNED"
	TypeLoadReassigned   Type = "LOAD_REASSIGNED"
	TypeLoadUnassigned   Type = "LOAD_UNASSIGNED"
	TypeLoadCancelled    Type = "LOAD_CANCELLED"
	TypeLoadReactivated  Type = "LOAD_REACTIVATED"
	TypeStatusChanged    Type = "STATUS_CHANGED"
	TypeStopCompleted    Type = "STOP_COMPLETED"
	TypeDocumentUploaded Type = "DOCUMENT_UPLOADED"
)

// Validate checks that the type belongs to the closed vocabulary.
func (t Type) Validate() error {
	switch t {
	case TypeLoadCreated, TypeLoadAssigned, TypeLoadReassigned, TypeLoadUnassigned,
		TypeLoadCancelled, TypeLoadReactivated, TypeStatusChanged, TypeStopCompleted,
		TypeDocumentUploaded:
		return nil
	default:
		return errs.NewValueIsInvalidError("event type")
	}
}

// String returns the wire name of the event type.
func (t Type) String() string {
	return string(t)
}

// Event is an immutable audit record describing one state change of one load.
// Both fleetID and loadID scope the event to the load it describes; actorUID
// identifies whoever triggered it (driver, dispatcher, or system).
//
// Event has no setters: all fields are fixed at construction.
type Event struct {
	id        kernel.UUID
	fleetID   kernel.UUID
	loadID    kernel.UUID
	actorUID  string
	payload   Payload
	createdAt time.Time

	isConstructed bool
}

// NewEvent creates an audit event for the given load. The event type is
// derived from the payload, keeping type and payload impossible to mismatch.
func NewEvent(
	id kernel.UUID,
	fleetID kernel.UUID,
	loadID kernel.UUID,
	actorUID string,
	payload Payload,
	createdAt time.Time,
) (*Event, error) {
	if err := errors.Join(
		validateUUID("event id", id),
		validateUUID("event fleetID", fleetID),
		validateUUID("event loadID", loadID),
	); err != nil {
		return nil, err
	}
	if actorUID == "" {
		return nil, errs.NewValueIsRequiredError("actorUID")
	}
	if payload == nil {
		return nil, errs.NewValueIsRequiredError("payload")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Event{
		id:            id,
		fleetID:       fleetID,
		loadID:        loadID,
		actorUID:      actorUID,
		payload:       payload,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreEvent reconstructs an event from persistence. It applies the same
// validation as NewEvent.
func RestoreEvent(
	id kernel.UUID,
	fleetID kernel.UUID,
	loadID kernel.UUID,
	actorUID string,
	payload Payload,
	createdAt time.Time,
) (*Event, error) {
	return NewEvent(id, fleetID, loadID, actorUID, payload, createdAt)
}

// Validate ensures the Event was created through NewEvent.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// FleetID returns the tenant the event is scoped to.
func (e *Event) FleetID() kernel.UUID {
	return e.fleetID
}

// LoadID returns the load the event describes.
func (e *Event) LoadID() kernel.UUID {
	return e.loadID
}

// Type returns the event type, derived from the payload.
func (e *Event) Type() Type {
	return e.payload.EventType()
}

// ActorUID returns the identity of whoever triggered the event.
func (e *Event) ActorUID() string {
	return e.actorUID
}

// Payload returns the typed payload for this event.
func (e *Event) Payload() Payload {
	return e.payload
}

// CreatedAt returns the immutable creation timestamp.
func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

func validateUUID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
