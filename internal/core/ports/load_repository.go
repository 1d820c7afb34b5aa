package ports

import (
	"context"
	"time"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
// Every read is scoped by fleet: a load that exists in another fleet is
// reported as not found, never as forbidden.
type LoadRepository interface {
	// Add persists a new load aggregate to storage.
	// The load must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load by its identifier within the given fleet.
	// Returns ObjectNotFoundError when the load does not exist in that fleet.
	Get(ctx context.Context, fleetID kernel.UUID, id kernel.UUID) (*load.Load, error)

	// GetAllForFleet retrieves every load in the fleet, most recently
	// updated first.
	GetAllForFleet(ctx context.Context, fleetID kernel.UUID) ([]*load.Load, error)

	// UpdateWithVersion persists changes to an existing load only if its
	// stored updatedAt still equals expectedUpdatedAt. Returns ConflictError
	// when the load changed since it was read, and ObjectNotFoundError when
	// it no longer exists in the fleet.
	UpdateWithVersion(ctx context.Context, aggregate *load.Load, expectedUpdatedAt time.Time) error
}
