// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"carrierops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LoadRepoFactory provides access to the load repository within a transaction.
	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	// EventRepoFactory provides access to the event repository within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// LoadUoW manages transactions touching a load and its audit trail.
	// The load mutation and the event append commit or roll back together.
	LoadUoW interface {
		TxManager
		LoadRepoFactory
		EventRepoFactory
	}

	// LoadUoWFactory creates new load unit of work instances.
	LoadUoWFactory interface {
		Create() LoadUoW
	}

	// DispatchUoW extends LoadUoW with the assignment-target repositories.
	// Used by dispatcher actions that must verify the driver and vehicle
	// exist in the acting fleet before booking them.
	DispatchUoW interface {
		TxManager
		LoadRepoFactory
		EventRepoFactory
		DriverRepoFactory
		VehicleRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
