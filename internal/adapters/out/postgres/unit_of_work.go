// Package postgres provides a GORM-based implementation of the Unit of Work
// pattern. The lifecycle handlers use it to keep a load mutation and its audit
// event in one transaction: both land, or neither does.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.LoadRepository().UpdateWithVersion(ctx, load, expected); err != nil {
//	    return err
//	}
//	if err := uow.EventRepository().Append(ctx, audit); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance holds its own transaction state; concurrent
// operations must use separate instances from the factory.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"carrierops/internal/adapters/out/postgres/driverrepo"
	"carrierops/internal/adapters/out/postgres/eventrepo"
	"carrierops/internal/adapters/out/postgres/loadrepo"
	"carrierops/internal/adapters/out/postgres/sqlerr"
	"carrierops/internal/adapters/out/postgres/vehiclerepo"
	"carrierops/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM connection
// pool. Each business operation gets a fresh unit of work so transaction state
// never leaks between operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the load, event,
// driver, and vehicle repositories. Repositories obtained from it run inside
// the active transaction; before Begin or after Commit/Rollback they fall back
// to the plain connection.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a new database transaction. Calling Begin again on an instance
// with an open transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return sqlerr.Wrap("tx.begin", err)
	}

	return nil
}

// Commit finalizes the current transaction. Returns
// gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return sqlerr.Wrap("tx.commit", err)
}

// Rollback discards the current transaction. Returns
// gorm.ErrInvalidTransaction when none is active, which makes it safe to
// defer unconditionally after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// LoadRepository returns a load repository bound to the current transaction.
func (uow *GormUnitOfWork) LoadRepository() ports.LoadRepository {
	return loadrepo.NewGormLoadRepository(uow.conn())
}

// EventRepository returns an event repository bound to the current transaction.
func (uow *GormUnitOfWork) EventRepository() ports.EventRepository {
	return eventrepo.NewGormEventRepository(uow.conn())
}

// DriverRepository returns a driver repository bound to the current transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn())
}

// VehicleRepository returns a vehicle repository bound to the current transaction.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
