package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrierops/internal/core/domain/model/identity"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
	"carrierops/internal/pkg/errs"
)

func driverClaims(fleetID kernel.UUID, driverID *kernel.UUID) identity.Claims {
	return identity.Claims{
		UID:      "driver-account",
		FleetID:  fleetID,
		Roles:    identity.NewRoleSet(identity.RoleDriver),
		DriverID: driverID,
	}
}

func TestAssertDriverActionAllowed(t *testing.T) {
	fleetID := kernel.NewUUID()

	t.Run("assigned driver may act", func(t *testing.T) {
		l := loadInStatus(t, load.Assigned, nil)
		assignedDriver := *l.DriverID()

		err := AssertDriverActionAllowed(l, driverClaims(fleetID, &assignedDriver))
		assert.NoError(t, err)
	})

	t.Run("different driver is forbidden", func(t *testing.T) {
		l := loadInStatus(t, load.Assigned, nil)
		otherDriver := kernel.NewUUID()

		err := AssertDriverActionAllowed(l, driverClaims(fleetID, &otherDriver))
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), l.ID().String())
	})

	t.Run("unassigned load is forbidden even for drivers", func(t *testing.T) {
		l := loadInStatus(t, load.Unassigned, nil)
		someDriver := kernel.NewUUID()

		err := AssertDriverActionAllowed(l, driverClaims(fleetID, &someDriver))
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("no driver profile is unauthenticated", func(t *testing.T) {
		l := loadInStatus(t, load.Assigned, nil)

		err := AssertDriverActionAllowed(l, driverClaims(fleetID, nil))
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("anonymous claims rejected", func(t *testing.T) {
		l := loadInStatus(t, load.Assigned, nil)

		err := AssertDriverActionAllowed(l, identity.Claims{})
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestAssertDispatcherActionAllowed(t *testing.T) {
	fleetID := kernel.NewUUID()

	claims := func(roles ...identity.Role) identity.Claims {
		return identity.Claims{UID: "account", FleetID: fleetID, Roles: identity.NewRoleSet(roles...)}
	}

	t.Run("each dispatching role is sufficient", func(t *testing.T) {
		for _, role := range identity.DispatchingRoles() {
			assert.NoError(t, AssertDispatcherActionAllowed(claims(role)), role.String())
		}
	})

	t.Run("dispatching role among others is sufficient", func(t *testing.T) {
		err := AssertDispatcherActionAllowed(claims(identity.RoleBilling, identity.RoleDispatcher))
		assert.NoError(t, err)
	})

	t.Run("non-dispatching roles are forbidden", func(t *testing.T) {
		err := AssertDispatcherActionAllowed(claims(identity.RoleDriver, identity.RoleBilling, identity.RoleMaintenanceManager))
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), "billing")
	})

	t.Run("empty role set is forbidden", func(t *testing.T) {
		err := AssertDispatcherActionAllowed(claims())
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("anonymous claims rejected", func(t *testing.T) {
		err := AssertDispatcherActionAllowed(identity.Claims{})
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}
