package load

import (
	"time"

	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/kernel"
)

// StopUpdate describes the completion of one stop, addressed by its index in
// the load's stop sequence. Produced by the transition engines, applied by
// Load.ApplyTransition.
type StopUpdate struct {
	Index      int
	ActualTime time.Time
}

// AssignmentChange describes a mutation of the load's driver/vehicle
// references. Clear and the references are mutually exclusive: UNASSIGN
// clears both, ASSIGN and REASSIGN replace both.
type AssignmentChange struct {
	Clear     bool
	DriverID  kernel.UUID
	VehicleID kernel.UUID
}

// TransitionResult is the outcome of a legal transition computation: the next
// status, the field mutations to apply, and the single audit event descriptor
// to append. The event type is carried by the payload's tag.
//
// A TransitionResult is a pure value. Computing one has no side effects;
// applying it to a load and persisting the event is the orchestrator's job.
type TransitionResult struct {
	NextStatus   Status
	StopUpdates  []StopUpdate
	Assignment   *AssignmentChange
	EventPayload event.Payload
}
