package load

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/pkg/errs"
)

func routeStops(t *testing.T) []Stop {
	t.Helper()
	pickup, err := NewStop(StopPickup, 0, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	delivery, err := NewStop(StopDelivery, 1, time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return []Stop{pickup, delivery}
}

func TestNewLoad(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	t.Run("unassigned by default", func(t *testing.T) {
		id := kernel.NewUUID()
		fleetID := kernel.NewUUID()

		l, err := NewLoad(id, fleetID, routeStops(t), false, now)
		require.NoError(t, err)

		assert.NoError(t, l.Validate())
		assert.Equal(t, id, l.ID())
		assert.Equal(t, fleetID, l.FleetID())
		assert.Equal(t, Unassigned, l.Status())
		assert.Nil(t, l.DriverID())
		assert.Nil(t, l.VehicleID())
		assert.Len(t, l.Stops(), 2)
		assert.Equal(t, now, l.UpdatedAt())
	})

	t.Run("draft on request", func(t *testing.T) {
		l, err := NewLoad(kernel.NewUUID(), kernel.NewUUID(), routeStops(t), true, now)
		require.NoError(t, err)
		assert.Equal(t, Draft, l.Status())
	})

	t.Run("requires id and fleet", func(t *testing.T) {
		_, err := NewLoad(kernel.UUID{}, kernel.NewUUID(), routeStops(t), false, now)
		assert.Error(t, err)

		_, err = NewLoad(kernel.NewUUID(), kernel.UUID{}, routeStops(t), false, now)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires pickup and delivery stops", func(t *testing.T) {
		pickupOnly := routeStops(t)[:1]
		_, err := NewLoad(kernel.NewUUID(), kernel.NewUUID(), pickupOnly, false, now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = NewLoad(kernel.NewUUID(), kernel.NewUUID(), nil, false, now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreLoad(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	driverID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	t.Run("assigned load with references", func(t *testing.T) {
		l, err := RestoreLoad(kernel.NewUUID(), kernel.NewUUID(), Assigned, &driverID, &vehicleID, routeStops(t), now)
		require.NoError(t, err)

		assert.Equal(t, Assigned, l.Status())
		require.NotNil(t, l.DriverID())
		assert.True(t, l.DriverID().IsEqual(driverID))
	})

	t.Run("assigned load without references rejected", func(t *testing.T) {
		_, err := RestoreLoad(kernel.NewUUID(), kernel.NewUUID(), Assigned, nil, nil, routeStops(t), now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unassigned load with references rejected", func(t *testing.T) {
		_, err := RestoreLoad(kernel.NewUUID(), kernel.NewUUID(), Unassigned, &driverID, &vehicleID, routeStops(t), now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("partial assignment rejected", func(t *testing.T) {
		_, err := RestoreLoad(kernel.NewUUID(), kernel.NewUUID(), Assigned, &driverID, nil, routeStops(t), now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("cancelled load keeps stale references", func(t *testing.T) {
		l, err := RestoreLoad(kernel.NewUUID(), kernel.NewUUID(), Cancelled, &driverID, &vehicleID, routeStops(t), now)
		require.NoError(t, err)
		assert.NotNil(t, l.DriverID())
	})

	t.Run("tolerates an incomplete stored route", func(t *testing.T) {
		pickupOnly := routeStops(t)[:1]
		l, err := RestoreLoad(kernel.NewUUID(), kernel.NewUUID(), Unassigned, nil, nil, pickupOnly, now)
		require.NoError(t, err)
		assert.Equal(t, -1, l.FirstStopOfType(StopDelivery))
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := RestoreLoad(kernel.NewUUID(), kernel.NewUUID(), Unknown, nil, nil, routeStops(t), now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLoadValidate(t *testing.T) {
	var nilLoad *Load
	assert.ErrorIs(t, nilLoad.Validate(), ErrLoadIsNotConstructed)
	assert.ErrorIs(t, (&Load{}).Validate(), ErrLoadIsNotConstructed)
}

func TestLoadFirstStopOfType(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	l, err := NewLoad(kernel.NewUUID(), kernel.NewUUID(), routeStops(t), false, now)
	require.NoError(t, err)

	assert.Equal(t, 0, l.FirstStopOfType(StopPickup))
	assert.Equal(t, 1, l.FirstStopOfType(StopDelivery))
	assert.Equal(t, -1, l.FirstStopOfType(StopTypeUnknown))
}

func TestLoadApplyTransition(t *testing.T) {
	created := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	now := created.Add(2 * time.Hour)
	driverID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	t.Run("status move with assignment", func(t *testing.T) {
		l, err := NewLoad(kernel.NewUUID(), kernel.NewUUID(), routeStops(t), false, created)
		require.NoError(t, err)

		err = l.ApplyTransition(TransitionResult{
			NextStatus: Assigned,
			Assignment: &AssignmentChange{DriverID: driverID, VehicleID: vehicleID},
			EventPayload: event.LoadAssignedPayload{
				DriverID:  driverID.String(),
				VehicleID: vehicleID.String(),
			},
		}, now)
		require.NoError(t, err)

		assert.Equal(t, Assigned, l.Status())
		require.NotNil(t, l.DriverID())
		assert.True(t, l.DriverID().IsEqual(driverID))
		assert.True(t, l.VehicleID().IsEqual(vehicleID))
		assert.Equal(t, now, l.UpdatedAt())
	})

	t.Run("clearing assignment", func(t *testing.T) {
		l, err := RestoreLoad(kernel.NewUUID(), kernel.NewUUID(), Assigned, &driverID, &vehicleID, routeStops(t), created)
		require.NoError(t, err)

		err = l.ApplyTransition(TransitionResult{
			NextStatus: Unassigned,
			Assignment: &AssignmentChange{Clear: true},
		}, now)
		require.NoError(t, err)

		assert.Equal(t, Unassigned, l.Status())
		assert.Nil(t, l.DriverID())
		assert.Nil(t, l.VehicleID())
	})

	t.Run("stop completion", func(t *testing.T) {
		l, err := RestoreLoad(kernel.NewUUID(), kernel.NewUUID(), AtPickup, &driverID, &vehicleID, routeStops(t), created)
		require.NoError(t, err)

		err = l.ApplyTransition(TransitionResult{
			NextStatus:  InTransit,
			StopUpdates: []StopUpdate{{Index: 0, ActualTime: now}},
		}, now)
		require.NoError(t, err)

		stops := l.Stops()
		assert.True(t, stops[0].IsCompleted())
		require.NotNil(t, stops[0].ActualTime())
		assert.Equal(t, now, *stops[0].ActualTime())
		assert.False(t, stops[1].IsCompleted())
	})

	t.Run("stop index out of range", func(t *testing.T) {
		l, err := NewLoad(kernel.NewUUID(), kernel.NewUUID(), routeStops(t), false, created)
		require.NoError(t, err)

		err = l.ApplyTransition(TransitionResult{
			NextStatus:  InTransit,
			StopUpdates: []StopUpdate{{Index: 5, ActualTime: now}},
		}, now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, Unassigned, l.Status())
	})

	t.Run("invalid next status", func(t *testing.T) {
		l, err := NewLoad(kernel.NewUUID(), kernel.NewUUID(), routeStops(t), false, created)
		require.NoError(t, err)

		err = l.ApplyTransition(TransitionResult{NextStatus: Unknown}, now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLoadClone(t *testing.T) {
	created := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	driverID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	original, err := RestoreLoad(kernel.NewUUID(), kernel.NewUUID(), Assigned, &driverID, &vehicleID, routeStops(t), created)
	require.NoError(t, err)

	clone := original.Clone()
	require.NoError(t, clone.Validate())
	assert.True(t, clone.IsEqual(original))
	assert.Equal(t, original.Status(), clone.Status())

	// Mutating the clone must not touch the original.
	err = clone.ApplyTransition(TransitionResult{
		NextStatus:  AtPickup,
		StopUpdates: []StopUpdate{{Index: 0, ActualTime: created.Add(time.Hour)}},
	}, created.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, Assigned, original.Status())
	assert.False(t, original.Stops()[0].IsCompleted())
	assert.Equal(t, AtPickup, clone.Status())
	assert.True(t, clone.Stops()[0].IsCompleted())
}
