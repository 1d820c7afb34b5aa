package load

import (
	"fmt"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/pkg/errs"
)

// DriverAction is an in-the-field action a driver takes against their
// assigned load. The vocabulary is closed and disjoint from DispatcherAction:
// drivers move a load along its route, dispatchers manage its assignment.
type DriverAction string

const (
	ArrivePickup   DriverAction = "ARRIVE_PICKUP"
	DepartPickup   DriverAction = "DEPART_PICKUP"
	ArriveDelivery DriverAction = "ARRIVE_DELIVERY"
	MarkDelivered  DriverAction = "MARK_DELIVERED"
)

// Validate checks the action belongs to the closed driver vocabulary.
func (a DriverAction) Validate() error {
	switch a {
	case ArrivePickup, DepartPickup, ArriveDelivery, MarkDelivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("driver action",
			fmt.Errorf("%q is not a valid driver action", string(a)))
	}
}

// String returns the wire name of the action.
func (a DriverAction) String() string {
	return string(a)
}

// DispatcherAction is a back-office action a dispatcher takes against a load.
type DispatcherAction string

const (
	Assign     DispatcherAction = "ASSIGN"
	Reassign   DispatcherAction = "REASSIGN"
	Unassign   DispatcherAction = "UNASSIGN"
	Cancel     DispatcherAction = "CANCEL"
	Reactivate DispatcherAction = "REACTIVATE"
)

// Validate checks the action belongs to the closed dispatcher vocabulary.
func (a DispatcherAction) Validate() error {
	switch a {
	case Assign, Reassign, Unassign, Cancel, Reactivate:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("dispatcher action",
			fmt.Errorf("%q is not a valid dispatcher action", string(a)))
	}
}

// String returns the wire name of the action.
func (a DispatcherAction) String() string {
	return string(a)
}

// AssignmentData carries the driver and vehicle references for ASSIGN and
// REASSIGN. Which driver and vehicle to pick is decided outside this core;
// this type only carries the decision.
type AssignmentData struct {
	DriverID  kernel.UUID
	VehicleID kernel.UUID
}

// Validate reports InvalidPayload unless both references are present.
func (d *AssignmentData) Validate(action DispatcherAction) error {
	if d == nil || d.DriverID.Validate() != nil || d.VehicleID.Validate() != nil {
		return errs.NewInvalidPayloadError(
			fmt.Sprintf("driverId and vehicleId are required for %s action", action))
	}
	return nil
}
