package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetFleetLoadsQueryHandler retrieves a fleet's load board from the database.
type GetFleetLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetFleetLoadsQueryHandler creates a handler for load board reads.
func NewGetFleetLoadsQueryHandler(db *gorm.DB) GetFleetLoadsQueryHandler {
	return GetFleetLoadsQueryHandler{db: db}
}

// Handle executes the query. Results come back most recently updated first,
// which puts the loads being worked right now at the top of the board.
func (h GetFleetLoadsQueryHandler) Handle(ctx context.Context, query GetFleetLoadsQuery) ([]LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			fleet_id,
			status,
			driver_id,
			vehicle_id,
			stops,
			updated_at
		FROM loads
		WHERE fleet_id = ?
	`
	args := []any{query.FleetID().Bytes()}

	if query.Status() != nil {
		sqlQuery += " AND status = ?"
		args = append(args, query.Status().String())
	}
	sqlQuery += " ORDER BY updated_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
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
