package event_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/kernel"
)

func TestNewEvent(t *testing.T) {
	id, fleetID, loadID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	createdAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	payload := event.StatusChangedPayload{PreviousStatus: "ASSIGNED", NewStatus: "AT_PICKUP"}

	t.Run("creates event with type derived from payload", func(t *testing.T) {
		e, err := event.NewEvent(id, fleetID, loadID, "driver-account", payload, createdAt)
		require.NoError(t, err)

		assert.Equal(t, event.TypeStatusChanged, e.Type())
		assert.Equal(t, "driver-account", e.ActorUID())
		assert.Equal(t, payload, e.Payload())
		assert.True(t, e.CreatedAt().Equal(createdAt))
	})

	t.Run("rejects missing identifiers", func(t *testing.T) {
		_, err := event.NewEvent(kernel.UUID{}, fleetID, loadID, "actor", payload, createdAt)
		assert.Error(t, err)

		_, err = event.NewEvent(id, kernel.UUID{}, loadID, "actor", payload, createdAt)
		assert.Error(t, err)

		_, err = event.NewEvent(id, fleetID, kernel.UUID{}, "actor", payload, createdAt)
		assert.Error(t, err)
	})

	t.Run("rejects missing actor, payload, and timestamp", func(t *testing.T) {
		_, err := event.NewEvent(id, fleetID, loadID, "", payload, createdAt)
		assert.Error(t, err)

		_, err = event.NewEvent(id, fleetID, loadID, "actor", nil, createdAt)
		assert.Error(t, err)

		_, err = event.NewEvent(id, fleetID, loadID, "actor", payload, time.Time{})
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var e *event.Event
		assert.ErrorIs(t, e.Validate(), event.ErrEventIsNotConstructed)
		assert.ErrorIs(t, (&event.Event{}).Validate(), event.ErrEventIsNotConstructed)
	})
}

func TestPayloadCodec(t *testing.T) {
	t.Run("reassignment payload keeps null previous refs", func(t *testing.T) {
		previousDriver := "e9a1b2c3-0000-4000-8000-000000000001"
		original := event.LoadReassignedPayload{
			PreviousStatus:    "ASSIGNED",
			NewStatus:         "ASSIGNED",
			PreviousDriverID:  &previousDriver,
			PreviousVehicleID: nil,
			DriverID:          "e9a1b2c3-0000-4000-8000-000000000002",
			VehicleID:         "e9a1b2c3-0000-4000-8000-000000000003",
		}

		data, err := event.MarshalPayload(original)
		require.NoError(t, err)

		decoded, err := event.UnmarshalPayload(event.TypeLoadReassigned, data)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})

	t.Run("stop completion payload round trips actual time", func(t *testing.T) {
		original := event.StopCompletedPayload{
			PreviousStatus: "AT_PICKUP",
			NewStatus:      "IN_TRANSIT",
			StopID:         "0",
			StopType:       "PICKUP",
			ActualTime:     time.Date(2026, 3, 10, 10, 15, 0, 0, time.UTC),
		}

		data, err := event.MarshalPayload(original)
		require.NoError(t, err)

		decoded, err := event.UnmarshalPayload(event.TypeStopCompleted, data)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})

	t.Run("unknown event type is rejected", func(t *testing.T) {
		_, err := event.UnmarshalPayload(event.Type("LOAD_EXPLODED"), []byte(`{}`))
		assert.Error(t, err)
	})

	t.Run("nil payload is rejected", func(t *testing.T) {
		_, err := event.MarshalPayload(nil)
		assert.Error(t, err)
	})
}
