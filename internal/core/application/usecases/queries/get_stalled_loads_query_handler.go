package queries

import (
	"context"

	"gorm.io/gorm"

	"carrierops/internal/core/domain/model/load"
)

// GetStalledLoadsQueryHandler finds idle in-flight loads for the monitoring job.
type GetStalledLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetStalledLoadsQueryHandler creates a handler for stalled-load sweeps.
func NewGetStalledLoadsQueryHandler(db *gorm.DB) GetStalledLoadsQueryHandler {
	return GetStalledLoadsQueryHandler{db: db}
}

// Handle executes the sweep. Only statuses where freight should be moving
// count; a DRAFT sitting for a week is normal, an IN_TRANSIT load is not.
func (h GetStalledLoadsQueryHandler) Handle(ctx context.Context, query GetStalledLoadsQuery) ([]LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			fleet_id,
			status,
			driver_id,
			vehicle_id,
			stops,
			updated_at
		FROM loads
		WHERE status IN (?, ?, ?, ?)
		  AND updated_at < ?
		ORDER BY updated_at
	`,
		load.Assigned.String(),
		load.AtPickup.String(),
		load.InTransit.String(),
		load.AtDelivery.String(),
		query.Cutoff(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loads := make([]LoadResponse, 0)
	for rows.Next() {
		resp, scanErr := scanLoadRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		loads = append(loads, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}
