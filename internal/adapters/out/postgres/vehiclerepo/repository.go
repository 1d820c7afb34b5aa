// Package vehiclerepo persists vehicles as assignment targets for dispatching.
package vehiclerepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carrierops/internal/adapters/out/postgres/sqlerr"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/vehicle"
	"carrierops/internal/pkg/errs"
)

// VehicleDTO represents the database structure for persisting vehicles.
type VehicleDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	FleetID uuid.UUID `gorm:"type:uuid;index:idx_vehicles_fleet"`
	Unit    string    `gorm:"type:text"`
	Active  bool
}

// TableName specifies the database table name for vehicles.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add saves a new vehicle to the database.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := VehicleDTO{
		ID:      aggregate.ID().Bytes(),
		FleetID: aggregate.FleetID().Bytes(),
		Unit:    aggregate.Unit(),
		Active:  aggregate.IsActive(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return sqlerr.Wrap("vehicles.add", err)
	}

	return nil
}

// Get retrieves a vehicle by ID within the given fleet.
func (r *GormVehicleRepository) Get(ctx context.Context, fleetID, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := errors.Join(fleetID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND fleet_id = ?", id.Bytes(), fleetID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, sqlerr.Wrap("vehicles.get", err)
	}

	restoredID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restoredFleetID, err := kernel.UUIDFromBytes(dto.FleetID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(restoredID, restoredFleetID, dto.Unit, dto.Active)
}
