// Package eventrepo persists the append-only audit trail of load events.
package eventrepo

import (
	"time"

	"github.com/google/uuid"

	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/kernel"
)

// EventDTO represents the database structure for persisting audit events.
// Rows are never updated or deleted; the trail only grows.
type EventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FleetID   uuid.UUID `gorm:"type:uuid;index:idx_load_events_fleet_load"`
	LoadID    uuid.UUID `gorm:"type:uuid;index:idx_load_events_fleet_load"`
	Type      string    `gorm:"type:text"`
	ActorUID  string    `gorm:"type:text"`
	Payload   []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for audit events.
func (EventDTO) TableName() string {
	return "load_events"
}

// fromDomain converts an event to its database representation.
func fromDomain(e *event.Event) (EventDTO, error) {
	payload, err := event.MarshalPayload(e.Payload())
	if err != nil {
		return EventDTO{}, err
	}

	return EventDTO{
		ID:        e.ID().Bytes(),
		FleetID:   e.FleetID().Bytes(),
		LoadID:    e.LoadID().Bytes(),
		Type:      e.Type().String(),
		ActorUID:  e.ActorUID(),
		Payload:   payload,
		CreatedAt: e.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO back into an event.
func toDomain(dto EventDTO) (*event.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	fleetID, err := kernel.UUIDFromBytes(dto.FleetID[:])
	if err != nil {
		return nil, err
	}
	loadID, err := kernel.UUIDFromBytes(dto.LoadID[:])
	if err != nil {
		return nil, err
	}

	payload, err := event.UnmarshalPayload(event.Type(dto.Type), dto.Payload)
	if err != nil {
		return nil, err
	}

	return event.RestoreEvent(id, fleetID, loadID, dto.ActorUID, payload, dto.CreatedAt)
}
