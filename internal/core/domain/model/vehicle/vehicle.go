// Package vehicle contains the Vehicle aggregate. Like a driver, a vehicle is
// an assignment target scoped to one fleet.
package vehicle

import (
	"errors"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/pkg/errs"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
// created through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle constructor")

// Vehicle is a truck or trailer unit owned by one fleet.
type Vehicle struct {
	id      kernel.UUID
	fleetID kernel.UUID
	unit    string
	active  bool

	isConstructed bool
}

// NewVehicle creates an active vehicle in the given fleet. Unit is the fleet's
// own unit number, not a VIN.
func NewVehicle(id kernel.UUID, fleetID kernel.UUID, unit string) (*Vehicle, error) {
	return RestoreVehicle(id, fleetID, unit, true)
}

// RestoreVehicle reconstructs a vehicle from persistence.
func RestoreVehicle(id kernel.UUID, fleetID kernel.UUID, unit string, active bool) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := fleetID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("fleetID", err)
	}
	if unit == "" {
		return nil, errs.NewValueIsRequiredError("unit")
	}

	return &Vehicle{
		id:            id,
		fleetID:       fleetID,
		unit:          unit,
		active:        active,
		isConstructed: true,
	}, nil
}

// Validate ensures the Vehicle was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// FleetID returns the fleet the vehicle belongs to.
func (v *Vehicle) FleetID() kernel.UUID {
	return v.fleetID
}

// Unit returns the fleet's unit number for the vehicle.
func (v *Vehicle) Unit() string {
	return v.unit
}

// IsActive reports whether the vehicle may take new assignments.
func (v *Vehicle) IsActive() bool {
	return v.active
}

// Deactivate takes the vehicle out of the assignment pool.
func (v *Vehicle) Deactivate() {
	v.active = false
}

// Activate returns the vehicle to the assignment pool.
func (v *Vehicle) Activate() {
	v.active = true
}
