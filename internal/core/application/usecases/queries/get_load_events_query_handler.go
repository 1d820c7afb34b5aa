package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carrierops/internal/core/domain/model/kernel"
)

// GetLoadEventsQueryHandler retrieves a load's audit trail from the database.
type GetLoadEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadEventsQueryHandler creates a handler for audit trail reads.
func NewGetLoadEventsQueryHandler(db *gorm.DB) GetLoadEventsQueryHandler {
	return GetLoadEventsQueryHandler{db: db}
}

// Handle executes the query, newest events first. A load with no events
// returns an empty trail, not an error; distinguishing a missing load from a
// quiet one is the single-load query's job.
func (h GetLoadEventsQueryHandler) Handle(ctx context.Context, query GetLoadEventsQuery) ([]EventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			load_id,
			type,
			actor_uid,
			payload,
			created_at
		FROM load_events
		WHERE fleet_id = ? AND load_id = ?
		ORDER BY created_at DESC
	`, query.FleetID().Bytes(), query.LoadID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]EventResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			loadID    uuid.UUID
			eventType string
			actorUID  string
			payload   []byte
			createdAt time.Time
		)

		if err = rows.Scan(&id, &loadID, &eventType, &actorUID, &payload, &createdAt); err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		loadUUID, idErr := kernel.UUIDFromBytes(loadID[:])
		if idErr != nil {
			return nil, idErr
		}

		events = append(events, EventResponse{
			ID:        eventID,
			LoadID:    loadUUID,
			Type:      eventType,
			ActorUID:  actorUID,
			Payload:   payload,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
