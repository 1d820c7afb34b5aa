package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/pkg/errs"
)

// GetLoadQueryHandler retrieves one load directly from the database.
//
// Example:
//
//	handler := NewGetLoadQueryHandler(db)
//	query, _ := NewGetLoadQuery(fleetID, loadID)
//	loadResp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // load does not exist in this fleet
//	}
type GetLoadQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadQueryHandler creates a handler for single-load reads.
func NewGetLoadQueryHandler(db *gorm.DB) GetLoadQueryHandler {
	return GetLoadQueryHandler{db: db}
}

// Handle executes the query. A load in another fleet is reported as not
// found, identically to one that does not exist.
func (h GetLoadQueryHandler) Handle(ctx context.Context, query GetLoadQuery) (LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return LoadResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			fleet_id,
			status,
			driver_id,
			vehicle_id,
			stops,
			updated_at
		FROM loads
		WHERE fleet_id = ? AND id = ?
	`, query.FleetID().Bytes(), query.LoadID().Bytes()).Row()

	resp, err := scanLoadRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return LoadResponse{}, errs.NewObjectNotFoundError("loadID", query.LoadID())
	}
	if err != nil {
		return LoadResponse{}, err
	}
	return resp, nil
}

// scanLoadRow maps one loads row into its read model. Shared by the single
// and listing handlers.
func scanLoadRow(scan func(dest ...any) error) (LoadResponse, error) {
	var (
		id        uuid.UUID
		fleetID   uuid.UUID
		status    string
		driverID  *uuid.UUID
		vehicleID *uuid.UUID
		stopsDoc  []byte
		updatedAt time.Time
	)

	if err := scan(&id, &fleetID, &status, &driverID, &vehicleID, &stopsDoc, &updatedAt); err != nil {
		return LoadResponse{}, err
	}

	loadID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return LoadResponse{}, err
	}
	fleetUUID, err := kernel.UUIDFromBytes(fleetID[:])
	if err != nil {
		return LoadResponse{}, err
	}

	var stops []StopResponse
	if len(stopsDoc) > 0 {
		if err = json.Unmarshal(stopsDoc, &stops); err != nil {
			return LoadResponse{}, err
		}
	}

	return LoadResponse{
		ID:        loadID,
		FleetID:   fleetUUID,
		Status:    status,
		DriverID:  uuidPtrString(driverID),
		VehicleID: uuidPtrString(vehicleID),
		Stops:     stops,
		UpdatedAt: updatedAt,
	}, nil
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
