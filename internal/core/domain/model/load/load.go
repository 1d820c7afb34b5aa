package load

import (
	"errors"
	"fmt"
	"time"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/pkg/errs"
)

var (
	// ErrLoadIsNotConstructed is returned when a Load instance was not created
	// through NewLoad or RestoreLoad. This ensures all loads are validated.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad constructor")
)

// Load is the aggregate root for a single shipment tracked from pickup to
// delivery. Every load belongs to exactly one fleet, forever.
//
// Load maintains these invariants:
//   - Valid unique identifier and fleet identifier
//   - At least one pickup and one delivery stop, in meaningful sequence order
//   - Driver and vehicle references are set together in statuses ASSIGNED
//     through DELIVERED, and absent in UNASSIGNED. DRAFT and CANCELLED carry
//     whatever the last transition left behind: CANCEL and REACTIVATE change
//     status only, so a cancelled ASSIGNED load keeps its references until
//     the next ASSIGN replaces them.
//   - updatedAt moves forward on every mutation
//
// Status never changes through direct mutation; the only write path is
// ApplyTransition with a TransitionResult computed by a transition engine.
type Load struct {
	id        kernel.UUID
	fleetID   kernel.UUID
	status    Status
	driverID  *kernel.UUID
	vehicleID *kernel.UUID
	stops     []Stop
	updatedAt time.Time

	isConstructed bool
}

// NewLoad creates a load in DRAFT or UNASSIGNED with no assignment. The stop
// list must contain at least one pickup and one delivery.
func NewLoad(id kernel.UUID, fleetID kernel.UUID, stops []Stop, asDraft bool, now time.Time) (*Load, error) {
	status := Unassigned
	if asDraft {
		status = Draft
	}

	l := &Load{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setFleetID(fleetID),
		l.setStops(stops),
		validateRouteCompleteness(stops),
	); err != nil {
		return nil, err
	}

	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}
	l.updatedAt = now

	return l, nil
}

// RestoreLoad reconstructs a load from persistence, re-validating the
// assignment-consistency invariant against the stored status. Unlike NewLoad
// it tolerates an incomplete route: already-stored data is never rejected on
// read, and a stop-completing action against such a load reports the missing
// stop instead.
func RestoreLoad(
	id kernel.UUID,
	fleetID kernel.UUID,
	status Status,
	driverID *kernel.UUID,
	vehicleID *kernel.UUID,
	stops []Stop,
	updatedAt time.Time,
) (*Load, error) {
	l := &Load{isConstructed: true}

	if err := errors.Join(
		l.setID(id),
		l.setFleetID(fleetID),
		l.setStops(stops),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := validateAssignmentConsistency(status, driverID, vehicleID); err != nil {
		return nil, err
	}
	if updatedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("updatedAt")
	}

	l.status = status
	l.driverID = driverID
	l.vehicleID = vehicleID
	l.updatedAt = updatedAt
	return l, nil
}

// Validate ensures the Load instance was properly constructed.
func (l *Load) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLoadIsNotConstructed
	}
	return nil
}

// IsEqual compares two loads by their unique identifiers.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the load's unique identifier.
func (l *Load) ID() kernel.UUID {
	return l.id
}

// FleetID returns the tenant the load belongs to. It never changes.
func (l *Load) FleetID() kernel.UUID {
	return l.fleetID
}

// Status returns the current lifecycle status.
func (l *Load) Status() Status {
	return l.status
}

// DriverID returns the assigned driver's ID, or nil when unassigned.
func (l *Load) DriverID() *kernel.UUID {
	return l.driverID
}

// VehicleID returns the assigned vehicle's ID, or nil when unassigned.
func (l *Load) VehicleID() *kernel.UUID {
	return l.vehicleID
}

// Stops returns a copy of the stop sequence in route order.
func (l *Load) Stops() []Stop {
	stops := make([]Stop, len(l.stops))
	copy(stops, l.stops)
	return stops
}

// UpdatedAt returns the timestamp of the last mutation. The persistence layer
// uses it as the optimistic-concurrency token for atomic writes.
func (l *Load) UpdatedAt() time.Time {
	return l.updatedAt
}

// FirstStopOfType returns the index of the first stop of the given type in
// route order, or -1 when the load has no such stop.
func (l *Load) FirstStopOfType(stopType StopType) int {
	for i, stop := range l.stops {
		if stop.Type() == stopType {
			return i
		}
	}
	return -1
}

// ApplyTransition applies a computed TransitionResult: the status move, any
// stop completions, and any assignment change, advancing updatedAt to now.
//
// ApplyTransition trusts the engine that produced the result; it validates
// only structural applicability (stop indexes in range), not business rules.
func (l *Load) ApplyTransition(result TransitionResult, now time.Time) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := result.NextStatus.Validate(); err != nil {
		return err
	}

	for _, update := range result.StopUpdates {
		if update.Index < 0 || update.Index >= len(l.stops) {
			return errs.NewValueIsInvalidErrorWithCause("stop update",
				fmt.Errorf("index %d is out of range for %d stops", update.Index, len(l.stops)))
		}
	}

	l.status = result.NextStatus
	for _, update := range result.StopUpdates {
		l.stops[update.Index].complete(update.ActualTime)
	}

	if result.Assignment != nil {
		if result.Assignment.Clear {
			l.driverID = nil
			l.vehicleID = nil
		} else {
			driverID := result.Assignment.DriverID
			vehicleID := result.Assignment.VehicleID
			l.driverID = &driverID
			l.vehicleID = &vehicleID
		}
	}

	l.updatedAt = now
	return nil
}

// Clone returns a deep copy of the load. Used by the orchestrator to keep an
// untouched snapshot for rollback while mutating an optimistic copy.
func (l *Load) Clone() *Load {
	clone := &Load{
		id:            l.id,
		fleetID:       l.fleetID,
		status:        l.status,
		stops:         make([]Stop, len(l.stops)),
		updatedAt:     l.updatedAt,
		isConstructed: l.isConstructed,
	}
	copy(clone.stops, l.stops)

	if l.driverID != nil {
		driverID := *l.driverID
		clone.driverID = &driverID
	}
	if l.vehicleID != nil {
		vehicleID := *l.vehicleID
		clone.vehicleID = &vehicleID
	}
	return clone
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setFleetID(fleetID kernel.UUID) error {
	if err := fleetID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("fleetID", err)
	}
	l.fleetID = fleetID
	return nil
}

func (l *Load) setStops(stops []Stop) error {
	for _, stop := range stops {
		if err := stop.Type().Validate(); err != nil {
			return err
		}
	}

	l.stops = make([]Stop, len(stops))
	copy(l.stops, stops)
	return nil
}

func validateRouteCompleteness(stops []Stop) error {
	hasPickup := false
	hasDelivery := false
	for _, stop := range stops {
		switch stop.Type() {
		case StopPickup:
			hasPickup = true
		case StopDelivery:
			hasDelivery = true
		case StopTypeUnknown:
		}
	}
	if !hasPickup || !hasDelivery {
		return errs.NewValueIsInvalidErrorWithCause("stops",
			errors.New("a load requires at least a pickup and a delivery stop"))
	}
	return nil
}

func validateAssignmentConsistency(status Status, driverID, vehicleID *kernel.UUID) error {
	assigned := driverID != nil && vehicleID != nil
	partial := (driverID == nil) != (vehicleID == nil)

	if partial {
		return errs.NewValueIsInvalidErrorWithCause("assignment",
			errors.New("driverID and vehicleID must be set together"))
	}

	switch status {
	case Assigned, AtPickup, InTransit, AtDelivery, Delivered:
		if !assigned {
			return errs.NewValueIsInvalidErrorWithCause("assignment",
				fmt.Errorf("%s requires a driver and vehicle", status))
		}
	case Unassigned:
		if assigned {
			return errs.NewValueIsInvalidErrorWithCause("assignment",
				fmt.Errorf("%s must not have a driver or vehicle", status))
		}
	case Unknown, Draft, Cancelled:
		// Draft and Cancelled carry whatever the last transition left behind.
	}
	return nil
}
