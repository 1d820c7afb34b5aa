package ports

import (
	"context"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
)

// LoadCache is the read-through cache in front of the load store. The cache is
// an optimization only: every value in it is disposable, and a miss or a cache
// error is always answered from authoritative storage.
type LoadCache interface {
	// GetLoad retrieves a cached load, or (nil, nil) on a miss. Cache errors
	// are reported as misses by implementations; this interface never
	// surfaces them.
	GetLoad(ctx context.Context, fleetID kernel.UUID, loadID kernel.UUID) (*load.Load, error)

	// PutLoad stores a load under its fleet-scoped key.
	PutLoad(ctx context.Context, aggregate *load.Load) error

	// InvalidateLoad drops the cached load and the fleet's load listing.
	// Called after every committed mutation and after every rollback.
	InvalidateLoad(ctx context.Context, fleetID kernel.UUID, loadID kernel.UUID) error
}
