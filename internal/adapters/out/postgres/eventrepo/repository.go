package eventrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"carrierops/internal/adapters/out/postgres/sqlerr"
	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/kernel"
)

// GormEventRepository implements EventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Append saves a new audit event. Events are immutable once written.
func (r *GormEventRepository) Append(ctx context.Context, e *event.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(e)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return sqlerr.Wrap("load_events.append", err)
	}

	return nil
}

// GetAllForLoad retrieves the audit trail of a load, newest first. An empty
// trail yields an empty slice, not an error.
func (r *GormEventRepository) GetAllForLoad(ctx context.Context, fleetID, loadID kernel.UUID) ([]*event.Event, error) {
	if err := errors.Join(fleetID.Validate(), loadID.Validate()); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "fleet_id = ? AND load_id = ?", fleetID.Bytes(), loadID.Bytes()).Error
	if err != nil {
		return nil, sqlerr.Wrap("load_events.get_all_for_load", err)
	}

	events := make([]*event.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, e)
	}

	return events, nil
}
