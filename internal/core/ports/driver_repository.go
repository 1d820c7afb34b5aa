package ports

import (
	"context"

	"carrierops/internal/core/domain/model/driver"
	"carrierops/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its identifier within the given fleet.
	// Returns ObjectNotFoundError when the driver does not exist in that fleet.
	Get(ctx context.Context, fleetID kernel.UUID, id kernel.UUID) (*driver.Driver, error)
}
