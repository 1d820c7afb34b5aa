package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrierops/internal/core/application/usecases/queries"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
)

func TestNewGetLoadQuery(t *testing.T) {
	fleetID, loadID := kernel.NewUUID(), kernel.NewUUID()

	q, err := queries.NewGetLoadQuery(fleetID, loadID)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())
	assert.Equal(t, fleetID, q.FleetID())
	assert.Equal(t, loadID, q.LoadID())

	_, err = queries.NewGetLoadQuery(kernel.UUID{}, loadID)
	assert.Error(t, err)

	_, err = queries.NewGetLoadQuery(fleetID, kernel.UUID{})
	assert.Error(t, err)

	assert.ErrorIs(t, queries.GetLoadQuery{}.Validate(), queries.ErrGetLoadQueryIsNotConstructed)
}

func TestNewGetFleetLoadsQuery(t *testing.T) {
	fleetID := kernel.NewUUID()

	q, err := queries.NewGetFleetLoadsQuery(fleetID, nil)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())
	assert.Nil(t, q.Status())

	status := load.InTransit
	q, err = queries.NewGetFleetLoadsQuery(fleetID, &status)
	require.NoError(t, err)
	assert.Equal(t, load.InTransit, *q.Status())

	invalid := load.Unknown
	_, err = queries.NewGetFleetLoadsQuery(fleetID, &invalid)
	assert.Error(t, err)

	assert.ErrorIs(t, queries.GetFleetLoadsQuery{}.Validate(), queries.ErrGetFleetLoadsQueryIsNotConstructed)
}

func TestNewGetLoadEventsQuery(t *testing.T) {
	fleetID, loadID := kernel.NewUUID(), kernel.NewUUID()

	q, err := queries.NewGetLoadEventsQuery(fleetID, loadID)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())

	_, err = queries.NewGetLoadEventsQuery(kernel.UUID{}, loadID)
	assert.Error(t, err)

	assert.ErrorIs(t, queries.GetLoadEventsQuery{}.Validate(), queries.ErrGetLoadEventsQueryIsNotConstructed)
}

func TestNewGetStalledLoadsQuery(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	q, err := queries.NewGetStalledLoadsQuery(4*time.Hour, now)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())
	assert.Equal(t, now.Add(-4*time.Hour), q.Cutoff())

	_, err = queries.NewGetStalledLoadsQuery(0, now)
	assert.Error(t, err)

	_, err = queries.NewGetStalledLoadsQuery(time.Hour, time.Time{})
	assert.Error(t, err)

	assert.ErrorIs(t, queries.GetStalledLoadsQuery{}.Validate(), queries.ErrGetStalledLoadsQueryIsNotConstructed)
}
