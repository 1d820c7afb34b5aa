package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"carrierops/internal/core/domain/model/identity"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
)

var actionTime = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

type fixture struct {
	fleetID   kernel.UUID
	loadID    kernel.UUID
	driverID  kernel.UUID
	vehicleID kernel.UUID
}

func newFixture() fixture {
	return fixture{
		fleetID:   kernel.NewUUID(),
		loadID:    kernel.NewUUID(),
		driverID:  kernel.NewUUID(),
		vehicleID: kernel.NewUUID(),
	}
}

func (f fixture) loadInStatus(t *testing.T, status load.Status) *load.Load {
	t.Helper()

	pickup, err := load.NewStop(load.StopPickup, 0, actionTime.Add(time.Hour))
	require.NoError(t, err)
	delivery, err := load.NewStop(load.StopDelivery, 1, actionTime.Add(6*time.Hour))
	require.NoError(t, err)

	var driverID, vehicleID *kernel.UUID
	switch status {
	case load.Assigned, load.AtPickup, load.InTransit, load.AtDelivery, load.Delivered:
		driverID, vehicleID = &f.driverID, &f.vehicleID
	}

	l, err := load.RestoreLoad(f.loadID, f.fleetID, status, driverID, vehicleID,
		[]load.Stop{pickup, delivery}, actionTime.Add(-time.Hour))
	require.NoError(t, err)
	return l
}

func (f fixture) driverClaims() identity.Claims {
	return identity.Claims{
		UID:      "driver-account",
		FleetID:  f.fleetID,
		Roles:    identity.NewRoleSet(identity.RoleDriver),
		DriverID: &f.driverID,
	}
}

func (f fixture) dispatcherClaims() identity.Claims {
	return identity.Claims{
		UID:     "dispatcher-account",
		FleetID: f.fleetID,
		Roles:   identity.NewRoleSet(identity.RoleDispatcher),
	}
}
