package commands

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
	"carrierops/internal/core/ports"
	"carrierops/internal/pkg/errs"
)

// Retry policy for the authoritative write phase. Only TransientStorageError
// is retried; every other error kind aborts immediately.
const (
	retryInitialInterval = time.Second
	retryMaxInterval     = 10 * time.Second
	retryMaxAttempts     = 2
)

// guardFunc authorizes the actor against the load it is about to change.
type guardFunc func(l *load.Load) error

// computeFunc computes the transition for the load's current state.
type computeFunc func(l *load.Load) (load.TransitionResult, error)

// withStorageRetry runs op, retrying TransientStorageError with exponential
// backoff. Each attempt must be self-contained: op opens and closes its own
// transaction.
func withStorageRetry(ctx context.Context, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = retryInitialInterval
	policy.MaxInterval = retryMaxInterval

	return backoff.Retry(func() error {
		err := op()
		if err != nil && !errors.Is(err, errs.ErrTransientStorage) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(policy, retryMaxAttempts), ctx))
}

// applyOptimistic runs the guard and the transition against the cached copy of
// the load, and on success publishes the speculative result to the cache.
//
// A guard or transition failure here is final: the authoritative state can
// only be equal to or ahead of the cache, so an action illegal against the
// cached state will not become legal on re-read. A stale cache that wrongly
// admits an action is caught by the authoritative re-check instead.
func applyOptimistic(
	ctx context.Context,
	cache ports.LoadCache,
	cached *load.Load,
	guard guardFunc,
	compute computeFunc,
	now time.Time,
) (bool, error) {
	if cached == nil {
		return false, nil
	}
	if err := guard(cached); err != nil {
		return false, err
	}
	result, err := compute(cached)
	if err != nil {
		return false, err
	}

	speculative := cached.Clone()
	if err = speculative.ApplyTransition(result, now); err != nil {
		return false, err
	}
	if err = cache.PutLoad(ctx, speculative); err != nil {
		// Cache write failures never fail the action.
		return false, nil
	}
	return true, nil
}

// commitTransition is one attempt of the authoritative phase: re-read,
// re-guard, re-compute, then write the load mutation and its audit event in
// one transaction. verify, when non-nil, runs extra in-transaction checks
// against the computed result before anything is written.
//
// The optimistic phase may have run against a stale cache; nothing it decided
// is trusted here. The stored updatedAt read in this transaction is the
// version token for the conditional write.
func commitTransition(
	ctx context.Context,
	uow LoadUoW,
	fleetID kernel.UUID,
	loadID kernel.UUID,
	actorUID string,
	now time.Time,
	guard guardFunc,
	compute computeFunc,
	verify func(ctx context.Context, result load.TransitionResult) error,
) (*load.Load, *event.Event, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()
	eventRepo := uow.EventRepository()

	l, err := loadRepo.Get(ctx, fleetID, loadID)
	if err != nil {
		return nil, nil, err
	}

	if err = guard(l); err != nil {
		return nil, nil, err
	}
	result, err := compute(l)
	if err != nil {
		return nil, nil, err
	}
	if verify != nil {
		if err = verify(ctx, result); err != nil {
			return nil, nil, err
		}
	}

	expected := l.UpdatedAt()
	if err = l.ApplyTransition(result, now); err != nil {
		return nil, nil, err
	}

	auditEvent, err := event.NewEvent(kernel.NewUUID(), fleetID, loadID, actorUID, result.EventPayload, now)
	if err != nil {
		return nil, nil, err
	}

	if err = loadRepo.UpdateWithVersion(ctx, l, expected); err != nil {
		return nil, nil, err
	}
	if err = eventRepo.Append(ctx, auditEvent); err != nil {
		return nil, nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return l, auditEvent, nil
}
