// Package loadrepo provides data transfer objects and mapping functions for
// load persistence. Stops are owned by their load and have no table of their
// own; they travel as a jsonb document inside the loads row, which keeps the
// aggregate's conditional update a single-row operation.
package loadrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
)

// LoadDTO represents the database structure for persisting load aggregates.
// UpdatedAt doubles as the optimistic-concurrency token: conditional updates
// match on it and bump it in the same statement.
type LoadDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FleetID   uuid.UUID  `gorm:"type:uuid;index:idx_loads_fleet"`
	Status    string     `gorm:"type:text;index:idx_loads_status"`
	DriverID  *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID *uuid.UUID `gorm:"type:uuid"`
	Stops     []byte     `gorm:"type:jsonb"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for load entities.
func (LoadDTO) TableName() string {
	return "loads"
}

// stopDoc is the jsonb shape of one stop. The field names are shared with the
// read-side queries; changing them is a data migration.
type stopDoc struct {
	Type          string     `json:"type"`
	Sequence      int        `json:"sequence"`
	ScheduledTime time.Time  `json:"scheduledTime"`
	ActualTime    *time.Time `json:"actualTime"`
	Completed     bool       `json:"completed"`
}

// fromDomain converts a load domain aggregate to its database representation.
func fromDomain(aggregate *load.Load) (LoadDTO, error) {
	stops := aggregate.Stops()
	docs := make([]stopDoc, 0, len(stops))
	for _, s := range stops {
		docs = append(docs, stopDoc{
			Type:          s.Type().String(),
			Sequence:      s.Sequence(),
			ScheduledTime: s.ScheduledTime(),
			ActualTime:    s.ActualTime(),
			Completed:     s.IsCompleted(),
		})
	}
	stopsDoc, err := json.Marshal(docs)
	if err != nil {
		return LoadDTO{}, err
	}

	var driverID, vehicleID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}
	if id := aggregate.VehicleID(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	return LoadDTO{
		ID:        aggregate.ID().Bytes(),
		FleetID:   aggregate.FleetID().Bytes(),
		Status:    aggregate.Status().String(),
		DriverID:  driverID,
		VehicleID: vehicleID,
		Stops:     stopsDoc,
		UpdatedAt: aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to a load domain aggregate.
func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	fleetID, err := kernel.UUIDFromBytes(dto.FleetID[:])
	if err != nil {
		return nil, err
	}

	status, err := load.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverID, vehicleID *kernel.UUID
	if dto.DriverID != nil {
		dID, idErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if idErr != nil {
			return nil, idErr
		}
		driverID = &dID
	}
	if dto.VehicleID != nil {
		vID, idErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if idErr != nil {
			return nil, idErr
		}
		vehicleID = &vID
	}

	var docs []stopDoc
	if len(dto.Stops) > 0 {
		if err = json.Unmarshal(dto.Stops, &docs); err != nil {
			return nil, err
		}
	}

	stops := make([]load.Stop, 0, len(docs))
	for _, doc := range docs {
		stopType, typeErr := load.StopTypeFromString(doc.Type)
		if typeErr != nil {
			return nil, typeErr
		}
		stop, stopErr := load.RestoreStop(stopType, doc.Sequence, doc.ScheduledTime, doc.ActualTime, doc.Completed)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	return load.RestoreLoad(id, fleetID, status, driverID, vehicleID, stops, dto.UpdatedAt)
}
