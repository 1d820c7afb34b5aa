package commands

import (
	"context"

	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/load"
	"carrierops/internal/core/domain/services"
	"carrierops/internal/core/ports"
)

// ApplyDriverActionCommandHandler orchestrates driver lifecycle actions.
//
// The flow has three phases. First the cached load, if any, is guarded and
// transitioned optimistically and the speculative result published to the
// cache, so clients see the move immediately. Then the authoritative copy is
// re-read inside a transaction, the guard and transition re-run against it,
// and the load mutation and audit event are written atomically with an
// optimistic-concurrency check on updatedAt. On any failure the speculative
// cache entry is discarded; on success the cache entries for the load and the
// fleet listing are invalidated so the next read comes from storage.
//
// Transient storage failures are retried with bounded exponential backoff;
// every other error aborts the action.
type ApplyDriverActionCommandHandler struct {
	uowFactory LoadUoWFactory
	cache      ports.LoadCache
}

// NewApplyDriverActionCommandHandler creates a handler for driver lifecycle actions.
func NewApplyDriverActionCommandHandler(uowFactory LoadUoWFactory, cache ports.LoadCache) ApplyDriverActionCommandHandler {
	return ApplyDriverActionCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes one driver action end to end and reports how far it got.
// The returned outcome is ActionCommitted with the post-transition load and
// the appended event, or ActionRolledBack with the error that stopped it.
func (h ApplyDriverActionCommandHandler) Handle(ctx context.Context, command ApplyDriverActionCommand) (ActionOutcome, error) {
	if err := command.Validate(); err != nil {
		return rolledBack(), err
	}

	claims := command.Claims()
	fleetID := claims.FleetID
	loadID := command.LoadID()

	guard := func(l *load.Load) error {
		return services.AssertDriverActionAllowed(l, claims)
	}
	compute := func(l *load.Load) (load.TransitionResult, error) {
		return services.ComputeDriverTransition(l, command.Action(), command.Now())
	}

	// Cache errors read as misses; the authoritative phase covers for them.
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
		l, e, attemptErr := commitTransition(ctx, uow, fleetID, loadID, claims.UID, command.Now(), guard, compute, nil)
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
