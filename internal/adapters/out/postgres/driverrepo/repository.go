// Package driverrepo persists drivers as assignment targets for dispatching.
package driverrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carrierops/internal/adapters/out/postgres/sqlerr"
	"carrierops/internal/core/domain/model/driver"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/pkg/errs"
)

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	FleetID uuid.UUID `gorm:"type:uuid;index:idx_drivers_fleet"`
	Name    string    `gorm:"type:text"`
	Active  bool
}

// TableName specifies the database table name for drivers.
func (DriverDTO) TableName() string {
	return "drivers"
}

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := DriverDTO{
		ID:      aggregate.ID().Bytes(),
		FleetID: aggregate.FleetID().Bytes(),
		Name:    aggregate.Name(),
		Active:  aggregate.IsActive(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return sqlerr.Wrap("drivers.add", err)
	}

	return nil
}

// Get retrieves a driver by ID within the given fleet.
func (r *GormDriverRepository) Get(ctx context.Context, fleetID, id kernel.UUID) (*driver.Driver, error) {
	if err := errors.Join(fleetID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto DriverDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND fleet_id = ?", id.Bytes(), fleetID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, sqlerr.Wrap("drivers.get", err)
	}

	restoredID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restoredFleetID, err := kernel.UUIDFromBytes(dto.FleetID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(restoredID, restoredFleetID, dto.Name, dto.Active)
}
