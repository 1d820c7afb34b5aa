package commands

import (
	"errors"
	"time"

	"carrierops/internal/core/domain/model/identity"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
	"carrierops/internal/pkg/errs"
	"carrierops/internal/pkg/guard"
)

var ErrApplyDriverActionCommandIsNotConstructed = errors.New(
	"ApplyDriverActionCommand must be created via NewApplyDriverActionCommand constructor",
)

// ApplyDriverActionCommand represents a driver's request to move their
// assigned load along its route: arriving at stops, departing the pickup,
// and marking delivery.
//
// Example:
//
//	cmd, err := NewApplyDriverActionCommand(loadID, claims, load.ArrivePickup, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//	outcome, err := handler.Handle(ctx, cmd)
type ApplyDriverActionCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID
	claims identity.Claims
	action load.DriverAction
	now    time.Time

	guard guard.ConstructorGuard
}

// NewApplyDriverActionCommand creates a command for one driver lifecycle
// action. now is the wall-clock moment the action happened; it becomes the
// actual time of any stop the action completes.
func NewApplyDriverActionCommand(
	loadID kernel.UUID,
	claims identity.Claims,
	action load.DriverAction,
	now time.Time,
) (ApplyDriverActionCommand, error) {
	cmd := ApplyDriverActionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setClaims(claims),
		cmd.setAction(action),
		cmd.setNow(now),
	); err != nil {
		return ApplyDriverActionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyDriverActionCommand) Validate() error {
	return c.guard.Validate(ErrApplyDriverActionCommandIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (c ApplyDriverActionCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Claims returns the verified identity of the acting driver.
func (c ApplyDriverActionCommand) Claims() identity.Claims {
	return c.claims
}

// Action returns the requested driver action.
func (c ApplyDriverActionCommand) Action() load.DriverAction {
	return c.action
}

// Now returns the moment the action happened.
func (c ApplyDriverActionCommand) Now() time.Time {
	return c.now
}

func (c *ApplyDriverActionCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *ApplyDriverActionCommand) setClaims(claims identity.Claims) error {
	if err := claims.Validate(); err != nil {
		return err
	}
	c.claims = claims
	return nil
}

func (c *ApplyDriverActionCommand) setAction(action load.DriverAction) error {
	if err := action.Validate(); err != nil {
		return err
	}
	c.action = action
	return nil
}

func (c *ApplyDriverActionCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	c.now = now
	return nil
}
