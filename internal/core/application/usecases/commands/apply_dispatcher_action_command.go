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

var ErrApplyDispatcherActionCommandIsNotConstructed = errors.New(
	"ApplyDispatcherActionCommand must be created via NewApplyDispatcherActionCommand constructor",
)

// ApplyDispatcherActionCommand represents a back-office request to manage a
// load's assignment or existence: assigning, reassigning, unassigning,
// cancelling, or reactivating.
//
// Assignment carries the driver and vehicle for ASSIGN and REASSIGN and is
// nil otherwise; whether it is required for the requested action is the
// transition engine's decision, not the command's. Reason applies to CANCEL
// only and may be empty.
type ApplyDispatcherActionCommand struct { //nolint:recvcheck //using for validation
	loadID     kernel.UUID
	claims     identity.Claims
	action     load.DispatcherAction
	assignment *load.AssignmentData
	reason     string
	now        time.Time

	guard guard.ConstructorGuard
}

// NewApplyDispatcherActionCommand creates a command for one dispatcher action.
func NewApplyDispatcherActionCommand(
	loadID kernel.UUID,
	claims identity.Claims,
	action load.DispatcherAction,
	assignment *load.AssignmentData,
	reason string,
	now time.Time,
) (ApplyDispatcherActionCommand, error) {
	cmd := ApplyDispatcherActionCommand{
		assignment: assignment,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setClaims(claims),
		cmd.setAction(action),
		cmd.setNow(now),
	); err != nil {
		return ApplyDispatcherActionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyDispatcherActionCommand) Validate() error {
	return c.guard.Validate(ErrApplyDispatcherActionCommandIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (c ApplyDispatcherActionCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Claims returns the verified identity of the acting dispatcher.
func (c ApplyDispatcherActionCommand) Claims() identity.Claims {
	return c.claims
}

// Action returns the requested dispatcher action.
func (c ApplyDispatcherActionCommand) Action() load.DispatcherAction {
	return c.action
}

// Assignment returns the driver/vehicle pair for ASSIGN and REASSIGN, or nil.
func (c ApplyDispatcherActionCommand) Assignment() *load.AssignmentData {
	return c.assignment
}

// Reason returns the cancellation reason, possibly empty.
func (c ApplyDispatcherActionCommand) Reason() string {
	return c.reason
}

// Now returns the moment the action happened.
func (c ApplyDispatcherActionCommand) Now() time.Time {
	return c.now
}

func (c *ApplyDispatcherActionCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *ApplyDispatcherActionCommand) setClaims(claims identity.Claims) error {
	if err := claims.Validate(); err != nil {
		return err
	}
	c.claims = claims
	return nil
}

func (c *ApplyDispatcherActionCommand) setAction(action load.DispatcherAction) error {
	if err := action.Validate(); err != nil {
		return err
	}
	c.action = action
	return nil
}

func (c *ApplyDispatcherActionCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	c.now = now
	return nil
}
