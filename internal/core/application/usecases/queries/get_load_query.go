// Package queries contains read-only operations in the CQRS architecture.
// Query handlers go straight to the database with raw SQL, bypassing the
// aggregates: reads have no invariants to protect and no events to append.
package queries

import (
	"errors"
	"time"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/pkg/guard"
)

var ErrGetLoadQueryIsNotConstructed = errors.New(
	"GetLoadQuery must be created via NewGetLoadQuery constructor",
)

// GetLoadQuery retrieves one load by identifier within a fleet.
//
// Example:
//
//	query, err := NewGetLoadQuery(claims.FleetID, loadID)
//	if err != nil {
//	    return err
//	}
//	loadResp, err := handler.Handle(ctx, query)
type GetLoadQuery struct {
	fleetID kernel.UUID
	loadID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoadQuery creates a query for one load. Both identifiers are required;
// the fleet scope comes from the caller's verified claims, never from input.
func NewGetLoadQuery(fleetID kernel.UUID, loadID kernel.UUID) (GetLoadQuery, error) {
	if err := fleetID.Validate(); err != nil {
		return GetLoadQuery{}, err
	}
	if err := loadID.Validate(); err != nil {
		return GetLoadQuery{}, err
	}

	return GetLoadQuery{
		fleetID: fleetID,
		loadID:  loadID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadQueryIsNotConstructed)
}

// FleetID returns the fleet scope of the query.
func (q GetLoadQuery) FleetID() kernel.UUID {
	return q.fleetID
}

// LoadID returns the requested load's identifier.
func (q GetLoadQuery) LoadID() kernel.UUID {
	return q.loadID
}

// StopResponse is the read model of one waypoint.
type StopResponse struct {
	Type          string     `json:"type"`
	Sequence      int        `json:"sequence"`
	ScheduledTime time.Time  `json:"scheduledTime"`
	ActualTime    *time.Time `json:"actualTime"`
	Completed     bool       `json:"completed"`
}

// LoadResponse is the read model of one load, in wire form.
type LoadResponse struct {
	ID        kernel.UUID    `json:"id"`
	FleetID   kernel.UUID    `json:"fleetId"`
	Status    string         `json:"status"`
	DriverID  *string        `json:"driverId"`
	VehicleID *string        `json:"vehicleId"`
	Stops     []StopResponse `json:"stops"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
