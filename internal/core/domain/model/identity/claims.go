package identity

import (
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/pkg/errs"
)

// Claims is the verified identity of the actor behind a request. It is built
// by the authentication middleware after signature verification and is trusted
// from there on; the core never re-verifies tokens.
//
// DriverID is set only for accounts linked to a driver profile. Dispatchers
// and owners have it nil.
type Claims struct {
	UID      string
	FleetID  kernel.UUID
	Roles    RoleSet
	DriverID *kernel.UUID
}

// Validate checks the claims carry an actor identity and a fleet scope.
func (c Claims) Validate() error {
	if c.UID == "" {
		return errs.NewUnauthenticatedError("missing actor uid")
	}
	if err := c.FleetID.Validate(); err != nil {
		return errs.NewUnauthenticatedError("missing fleet scope")
	}
	return nil
}
