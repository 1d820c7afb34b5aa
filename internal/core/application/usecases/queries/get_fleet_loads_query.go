package queries

import (
	"errors"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
	"carrierops/internal/pkg/guard"
)

var ErrGetFleetLoadsQueryIsNotConstructed = errors.New(
	"GetFleetLoadsQuery must be created via NewGetFleetLoadsQuery constructor",
)

// GetFleetLoadsQuery retrieves a fleet's loads, most recently updated first,
// optionally filtered to one status.
type GetFleetLoadsQuery struct {
	fleetID kernel.UUID
	status  *load.Status

	guard guard.ConstructorGuard
}

// NewGetFleetLoadsQuery creates a query for a fleet's load board. status is
// optional; nil lists every load in the fleet.
func NewGetFleetLoadsQuery(fleetID kernel.UUID, status *load.Status) (GetFleetLoadsQuery, error) {
	if err := fleetID.Validate(); err != nil {
		return GetFleetLoadsQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetFleetLoadsQuery{}, err
		}
	}

	return GetFleetLoadsQuery{
		fleetID: fleetID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFleetLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetLoadsQueryIsNotConstructed)
}

// FleetID returns the fleet scope of the query.
func (q GetFleetLoadsQuery) FleetID() kernel.UUID {
	return q.fleetID
}

// Status returns the optional status filter.
func (q GetFleetLoadsQuery) Status() *load.Status {
	return q.status
}
