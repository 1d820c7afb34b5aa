// Package driver contains the Driver aggregate. In this service a driver is
// an assignment target: load dispatching checks the driver exists in the
// acting fleet and is active before booking them onto a load.
package driver

import (
	"errors"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not created
// through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

// Driver is a person who moves loads for one fleet.
type Driver struct {
	id      kernel.UUID
	fleetID kernel.UUID
	name    string
	active  bool

	isConstructed bool
}

// NewDriver creates an active driver in the given fleet.
func NewDriver(id kernel.UUID, fleetID kernel.UUID, name string) (*Driver, error) {
	return RestoreDriver(id, fleetID, name, true)
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(id kernel.UUID, fleetID kernel.UUID, name string, active bool) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := fleetID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("fleetID", err)
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Driver{
		id:            id,
		fleetID:       fleetID,
		name:          name,
		active:        active,
		isConstructed: true,
	}, nil
}

// Validate ensures the Driver was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// FleetID returns the fleet the driver works for.
func (d *Driver) FleetID() kernel.UUID {
	return d.fleetID
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// IsActive reports whether the driver may take new assignments.
func (d *Driver) IsActive() bool {
	return d.active
}

// Deactivate takes the driver out of the assignment pool. Loads already
// assigned keep moving; only new assignments are blocked.
func (d *Driver) Deactivate() {
	d.active = false
}

// Activate returns the driver to the assignment pool.
func (d *Driver) Activate() {
	d.active = true
}
