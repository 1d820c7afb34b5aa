package loadrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"carrierops/internal/adapters/out/postgres/sqlerr"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
	"carrierops/internal/pkg/errs"
)

// GormLoadRepository implements LoadRepository using GORM. Every read and
// write is scoped by fleet; a load belonging to another fleet is
// indistinguishable from a missing one.
type GormLoadRepository struct {
	db *gorm.DB
}

// NewGormLoadRepository creates a new GORM load repository.
func NewGormLoadRepository(db *gorm.DB) *GormLoadRepository {
	return &GormLoadRepository{db: db}
}

// Add saves a new load to the database.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return sqlerr.Wrap("loads.add", err)
	}

	return nil
}

// Get retrieves a load by ID within the given fleet.
func (r *GormLoadRepository) Get(ctx context.Context, fleetID, id kernel.UUID) (*load.Load, error) {
	if err := errors.Join(fleetID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto LoadDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND fleet_id = ?", id.Bytes(), fleetID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, sqlerr.Wrap("loads.get", err)
	}

	return toDomain(dto)
}

// GetAllForFleet retrieves all loads for a fleet, most recently touched first.
func (r *GormLoadRepository) GetAllForFleet(ctx context.Context, fleetID kernel.UUID) ([]*load.Load, error) {
	if err := fleetID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LoadDTO
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&dtos, "fleet_id = ?", fleetID.Bytes()).Error
	if err != nil {
		return nil, sqlerr.Wrap("loads.get_all_for_fleet", err)
	}

	loads := make([]*load.Load, 0, len(dtos))
	for _, dto := range dtos {
		l, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		loads = append(loads, l)
	}

	return loads, nil
}

// UpdateWithVersion saves the load only if the stored row still carries
// expectedUpdatedAt. A mismatch means another writer got there first and
// yields a ConflictError; the caller is expected to re-read and
// retry its transition from the fresh state.
func (r *GormLoadRepository) UpdateWithVersion(ctx context.Context, aggregate *load.Load, expectedUpdatedAt time.Time) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	// Select forces every column into the UPDATE so a cleared assignment
	// (nil driver and vehicle refs) actually nulls the row out.
	result := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Where("id = ? AND fleet_id = ? AND updated_at = ?", dto.ID, dto.FleetID, expectedUpdatedAt).
		Select("status", "driver_id", "vehicle_id", "stops", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return sqlerr.Wrap("loads.update", result.Error)
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, dto, aggregate.ID())
	}

	return nil
}

// classifyMissedUpdate tells a version conflict apart from a vanished row
// after a conditional update matched nothing.
func (r *GormLoadRepository) classifyMissedUpdate(ctx context.Context, dto LoadDTO, id kernel.UUID) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Where("id = ? AND fleet_id = ?", dto.ID, dto.FleetID).
		Count(&count).Error
	if err != nil {
		return sqlerr.Wrap("loads.update", err)
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("load", id.String())
	}
	return errs.NewConflictError("load", id.String())
}
