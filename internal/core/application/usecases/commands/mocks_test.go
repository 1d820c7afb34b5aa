package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"carrierops/internal/core/application/usecases/commands"
	"carrierops/internal/core/domain/model/driver"
	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
	"carrierops/internal/core/domain/model/vehicle"
	"carrierops/internal/core/ports"
)

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, fleetID kernel.UUID, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, fleetID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadRepository) GetAllForFleet(ctx context.Context, fleetID kernel.UUID) ([]*load.Load, error) {
	args := m.Called(ctx, fleetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*load.Load), args.Error(1)
}

func (m *MockLoadRepository) UpdateWithVersion(ctx context.Context, l *load.Load, expectedUpdatedAt time.Time) error {
	args := m.Called(ctx, l, expectedUpdatedAt)
	return args.Error(0)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Append(ctx context.Context, e *event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) GetAllForLoad(ctx context.Context, fleetID kernel.UUID, loadID kernel.UUID) ([]*event.Event, error) {
	args := m.Called(ctx, fleetID, loadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, fleetID kernel.UUID, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, fleetID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, fleetID kernel.UUID, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, fleetID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockDispatchUoW struct{ mock.Mock }

func (m *MockDispatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

func (m *MockDispatchUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

func (m *MockDispatchUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockDispatchUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockLoadUoWFactory struct{ mock.Mock }

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockLoadCache struct{ mock.Mock }

func (m *MockLoadCache) GetLoad(ctx context.Context, fleetID kernel.UUID, loadID kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, fleetID, loadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadCache) PutLoad(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadCache) InvalidateLoad(ctx context.Context, fleetID kernel.UUID, loadID kernel.UUID) error {
	args := m.Called(ctx, fleetID, loadID)
	return args.Error(0)
}
