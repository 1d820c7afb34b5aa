package ports

import (
	"context"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by its identifier within the given fleet.
	// Returns ObjectNotFoundError when the vehicle does not exist in that fleet.
	Get(ctx context.Context, fleetID kernel.UUID, id kernel.UUID) (*vehicle.Vehicle, error)
}
