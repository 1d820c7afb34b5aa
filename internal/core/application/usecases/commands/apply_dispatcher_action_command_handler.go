package commands

import (
	"context"
	"fmt"

	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/load"
	"carrierops/internal/core/domain/services"
	"carrierops/internal/core/ports"
	"carrierops/internal/pkg/errs"
)

// ApplyDispatcherActionCommandHandler orchestrates dispatcher lifecycle
// actions. The phases mirror ApplyDriverActionCommandHandler; the differences
// are the guard (role membership instead of load ownership) and an extra
// in-transaction check for ASSIGN and REASSIGN, which must verify the driver
// and vehicle exist in the acting fleet and are active before booking them.
type ApplyDispatcherActionCommandHandler struct {
	uowFactory DispatchUoWFactory
	cache      ports.LoadCache
}

// NewApplyDispatcherActionCommandHandler creates a handler for dispatcher
// lifecycle actions.
func NewApplyDispatcherActionCommandHandler(uowFactory DispatchUoWFactory, cache ports.LoadCache) ApplyDispatcherActionCommandHandler {
	return ApplyDispatcherActionCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes one dispatcher action end to end and reports how far it
// got. The role guard runs before anything else: a caller without a
// dispatching role never touches the cache or storage.
func (h ApplyDispatcherActionCommandHandler) Handle(ctx context.Context, command ApplyDispatcherActionCommand) (ActionOutcome, error) {
	if err := command.Validate(); err != nil {
		return rolledBack(), err
	}

	claims := command.Claims()
	if err := services.AssertDispatcherActionAllowed(claims); err != nil {
		return rolledBack(), err
	}

	fleetID := claims.FleetID
	loadID := command.LoadID()

	// Role membership was checked above; the per-load guard has nothing
	// further to verify for dispatcher actions.
	guard := func(*load.Load) error { return nil }
	compute := func(l *load.Load) (load.TransitionResult, error) {
		return services.ComputeDispatcherTransition(l, command.Action(), command.Assignment(), command.Reason())
	}

	cached, _ := h.cache.GetLoad(ctx, fleetID, loadID)
	optimistic, err := applyOptimistic(ctx, h.cache, cached, guard, compute, command.Now())
	if err != nil {
		return rolledBack(), err
	}

	var (
		updated *load.Load
		audit   *event.Event
	)
	err = withStorageRetry(ctx, func() error {
		uow := h.uowFactory.Create()
		verify := h.assignmentVerifier(uow, command)
		l, e, attemptErr := commitTransition(ctx, uow, fleetID, loadID, claims.UID, command.Now(), guard, compute, verify)
		if attemptErr != nil {
			return attemptErr
		}
		updated = l
		audit = e
		return nil
	})
	if err != nil {
		if optimistic {
			_ = h.cache.InvalidateLoad(ctx, fleetID, loadID)
		}
		return rolledBack(), err
	}

	_ = h.cache.InvalidateLoad(ctx, fleetID, loadID)
	return committed(updated, audit), nil
}

// assignmentVerifier checks the assignment targets inside the transaction for
// ASSIGN and REASSIGN. A driver or vehicle belonging to another fleet is
// reported as not found, exactly like one that does not exist.
func (h ApplyDispatcherActionCommandHandler) assignmentVerifier(
	uow DispatchUoW,
	command ApplyDispatcherActionCommand,
) func(ctx context.Context, result load.TransitionResult) error {
	data := command.Assignment()
	if data == nil || (command.Action() != load.Assign && command.Action() != load.Reassign) {
		return nil
	}

	fleetID := command.Claims().FleetID

	return func(ctx context.Context, _ load.TransitionResult) error {
		d, err := uow.DriverRepository().Get(ctx, fleetID, data.DriverID)
		if err != nil {
			return err
		}
		if !d.IsActive() {
			return errs.NewInvalidPayloadError(
				fmt.Sprintf("driverId %s refers to an inactive driver", data.DriverID))
		}

		v, err := uow.VehicleRepository().Get(ctx, fleetID, data.VehicleID)
		if err != nil {
			return err
		}
		if !v.IsActive() {
			return errs.NewInvalidPayloadError(
				fmt.Sprintf("vehicleId %s refers to an inactive vehicle", data.VehicleID))
		}
		return nil
	}
}
