package services

import (
	"fmt"

	"carrierops/internal/core/domain/model/identity"
	"carrierops/internal/core/domain/model/load"
	"carrierops/internal/pkg/errs"
)

// AssertDriverActionAllowed checks that the actor is the driver currently
// assigned to the load. Ownership, not role, is what authorizes field actions:
// a driver can move only their own load, no matter what roles they hold.
//
// Returns Unauthenticated when the claims carry no driver profile at all, and
// Forbidden when they carry the wrong one or the load has no driver.
func AssertDriverActionAllowed(l *load.Load, claims identity.Claims) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := claims.Validate(); err != nil {
		return err
	}
	if claims.DriverID == nil {
		return errs.NewUnauthenticatedError("actor has no driver profile")
	}
	if l.DriverID() == nil || !l.DriverID().IsEqual(*claims.DriverID) {
		return errs.NewForbiddenError(
			fmt.Sprintf("load %s is not assigned to driver %s", l.ID(), claims.DriverID))
	}
	return nil
}

// AssertDispatcherActionAllowed checks that the actor holds a dispatching
// role. The check is a set-membership question against the actor's full role
// set; holding any one of the dispatching roles is enough.
func AssertDispatcherActionAllowed(claims identity.Claims) error {
	if err := claims.Validate(); err != nil {
		return err
	}
	if !claims.Roles.HasAny(identity.DispatchingRoles()...) {
		return errs.NewForbiddenError(
			fmt.Sprintf("roles [%s] do not permit dispatcher actions", claims.Roles))
	}
	return nil
}
