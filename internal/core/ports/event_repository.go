package ports

import (
	"context"

	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/kernel"
)

// EventRepository defines the persistence contract for the append-only audit
// trail. Events are never updated or deleted.
type EventRepository interface {
	// Append persists a new audit event. When called on a transaction-bound
	// repository, the append commits or rolls back with the load mutation it
	// describes.
	Append(ctx context.Context, aggregate *event.Event) error

	// GetAllForLoad retrieves the audit trail of one load within the given
	// fleet, newest first.
	GetAllForLoad(ctx context.Context, fleetID kernel.UUID, loadID kernel.UUID) ([]*event.Event, error)
}
