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

var ErrCreateLoadCommandIsNotConstructed = errors.New(
	"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
)

// StopSpec describes one waypoint of a new load. Sequence is implied by
// position in the command's stop list.
type StopSpec struct {
	Type          load.StopType
	ScheduledTime time.Time
}

// CreateLoadCommand represents a request to register a new load, either as a
// working DRAFT or directly UNASSIGNED and ready for dispatch.
//
// Example:
//
//	cmd, err := NewCreateLoadCommand(kernel.NewUUID(), claims, stops, false, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid load data: %w", err)
//	}
//	outcome, err := handler.Handle(ctx, cmd)
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID  kernel.UUID
	claims  identity.Claims
	stops   []StopSpec
	asDraft bool
	now     time.Time

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand creates a command to register a new load. The stop list
// must contain at least a pickup and a delivery; the full route check happens
// in the Load constructor when the command is handled.
func NewCreateLoadCommand(
	loadID kernel.UUID,
	claims identity.Claims,
	stops []StopSpec,
	asDraft bool,
	now time.Time,
) (CreateLoadCommand, error) {
	cmd := CreateLoadCommand{
		asDraft: asDraft,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setClaims(claims),
		cmd.setStops(stops),
		cmd.setNow(now),
	); err != nil {
		return CreateLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

// LoadID returns the identifier the new load will carry.
func (c CreateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Claims returns the verified identity of the creating dispatcher.
func (c CreateLoadCommand) Claims() identity.Claims {
	return c.claims
}

// Stops returns the waypoint specs in route order.
func (c CreateLoadCommand) Stops() []StopSpec {
	return c.stops
}

// AsDraft reports whether the load starts in DRAFT instead of UNASSIGNED.
func (c CreateLoadCommand) AsDraft() bool {
	return c.asDraft
}

// Now returns the creation moment.
func (c CreateLoadCommand) Now() time.Time {
	return c.now
}

func (c *CreateLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *CreateLoadCommand) setClaims(claims identity.Claims) error {
	if err := claims.Validate(); err != nil {
		return err
	}
	c.claims = claims
	return nil
}

func (c *CreateLoadCommand) setStops(stops []StopSpec) error {
	if len(stops) == 0 {
		return errs.NewValueIsRequiredError("stops")
	}
	c.stops = stops
	return nil
}

func (c *CreateLoadCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	c.now = now
	return nil
}
