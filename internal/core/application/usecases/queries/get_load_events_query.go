package queries

import (
	"encoding/json"
	"errors"
	"time"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/pkg/guard"
)

var ErrGetLoadEventsQueryIsNotConstructed = errors.New(
	"GetLoadEventsQuery must be created via NewGetLoadEventsQuery constructor",
)

// GetLoadEventsQuery retrieves the audit trail of one load, newest first.
type GetLoadEventsQuery struct {
	fleetID kernel.UUID
	loadID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoadEventsQuery creates a query for a load's audit trail.
func NewGetLoadEventsQuery(fleetID kernel.UUID, loadID kernel.UUID) (GetLoadEventsQuery, error) {
	if err := fleetID.Validate(); err != nil {
		return GetLoadEventsQuery{}, err
	}
	if err := loadID.Validate(); err != nil {
		return GetLoadEventsQuery{}, err
	}

	return GetLoadEventsQuery{
		fleetID: fleetID,
		loadID:  loadID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadEventsQueryIsNotConstructed)
}

// FleetID returns the fleet scope of the query.
func (q GetLoadEventsQuery) FleetID() kernel.UUID {
	return q.fleetID
}

// LoadID returns the load whose trail is requested.
func (q GetLoadEventsQuery) LoadID() kernel.UUID {
	return q.loadID
}

// EventResponse is the read model of one audit event. Payload is passed
// through as stored; the write side guarantees it matches the type tag.
type EventResponse struct {
	ID        kernel.UUID     `json:"id"`
	LoadID    kernel.UUID     `json:"loadId"`
	Type      string          `json:"type"`
	ActorUID  string          `json:"actorUid"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}
