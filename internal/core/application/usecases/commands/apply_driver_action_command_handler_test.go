package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"carrierops/internal/core/application/usecases/commands"
	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/load"
	"carrierops/internal/pkg/errs"
)

func TestApplyDriverActionCommandHandler_Handle_CommitsOnCacheMiss(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	stored := f.loadInStatus(t, load.Assigned)

	cmd, err := commands.NewApplyDriverActionCommand(f.loadID, f.driverClaims(), load.ArrivePickup, actionTime)
	require.NoError(t, err)

	cache := new(MockLoadCache)
	cache.On("GetLoad", ctx, f.fleetID, f.loadID).Return(nil, nil).Once()
	cache.On("InvalidateLoad", ctx, f.fleetID, f.loadID).Return(nil).Once()

	loadRepo := new(MockLoadRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		loadRepo.On("Get", ctx, f.fleetID, f.loadID).Return(stored, nil).Once(),
		loadRepo.On("UpdateWithVersion", ctx, stored, actionTime.Add(-time.Hour)).Return(nil).Once(),
		eventRepo.On("Append", ctx, mock.AnythingOfType("*event.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyDriverActionCommandHandler(factory, cache)
	outcome, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, commands.ActionCommitted, outcome.Phase)
	require.NotNil(t, outcome.Load)
	assert.Equal(t, load.AtPickup, outcome.Load.Status())
	require.NotNil(t, outcome.Event)
	assert.Equal(t, event.TypeStatusChanged, outcome.Event.Type())
	assert.Equal(t, "driver-account", outcome.Event.ActorUID())

	loadRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestApplyDriverActionCommandHandler_Handle_OptimisticThenCommit(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	cachedCopy := f.loadInStatus(t, load.AtPickup)
	stored := f.loadInStatus(t, load.AtPickup)

	cmd, err := commands.NewApplyDriverActionCommand(f.loadID, f.driverClaims(), load.DepartPickup, actionTime)
	require.NoError(t, err)

	cache := new(MockLoadCache)
	cache.On("GetLoad", ctx, f.fleetID, f.loadID).Return(cachedCopy, nil).Once()
	cache.On("PutLoad", ctx, mock.MatchedBy(func(l *load.Load) bool {
		return l.Status() == load.InTransit && l.Stops()[0].IsCompleted()
	})).Return(nil).Once()
	cache.On("InvalidateLoad", ctx, f.fleetID, f.loadID).Return(nil).Once()

	loadRepo := new(MockLoadRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockDispatchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LoadRepository").Return(loadRepo).Once()
	uow.On("EventRepository").Return(eventRepo).Once()
	loadRepo.On("Get", ctx, f.fleetID, f.loadID).Return(stored, nil).Once()
	loadRepo.On("UpdateWithVersion", ctx, stored, mock.AnythingOfType("time.Time")).Return(nil).Once()
	eventRepo.On("Append", ctx, mock.MatchedBy(func(e *event.Event) bool {
		return e.Type() == event.TypeStopCompleted
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyDriverActionCommandHandler(factory, cache)
	outcome, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, commands.ActionCommitted, outcome.Phase)
	assert.Equal(t, load.InTransit, outcome.Load.Status())
	// The cached copy the handler read stays untouched; only the clone moved.
	assert.Equal(t, load.AtPickup, cachedCopy.Status())

	payload := outcome.Event.Payload().(event.StopCompletedPayload)
	assert.Equal(t, "PICKUP", payload.StopType)
	assert.Equal(t, actionTime, payload.ActualTime)

	cache.AssertExpectations(t)
	loadRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
}

func TestApplyDriverActionCommandHandler_Handle_IllegalTransitionSkipsStorage(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	cachedCopy := f.loadInStatus(t, load.Delivered)

	cmd, err := commands.NewApplyDriverActionCommand(f.loadID, f.driverClaims(), load.ArrivePickup, actionTime)
	require.NoError(t, err)

	cache := new(MockLoadCache)
	cache.On("GetLoad", ctx, f.fleetID, f.loadID).Return(cachedCopy, nil).Once()

	factory := new(MockLoadUoWFactory)

	h := commands.NewApplyDriverActionCommandHandler(factory, cache)
	outcome, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	assert.Equal(t, commands.ActionRolledBack, outcome.Phase)
	assert.Nil(t, outcome.Load)

	factory.AssertNotCalled(t, "Create")
	cache.AssertNotCalled(t, "PutLoad", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestApplyDriverActionCommandHandler_Handle_WrongDriverForbidden(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	cachedCopy := f.loadInStatus(t, load.Assigned)

	other := newFixture()
	other.fleetID = f.fleetID
	other.loadID = f.loadID

	cmd, err := commands.NewApplyDriverActionCommand(f.loadID, other.driverClaims(), load.ArrivePickup, actionTime)
	require.NoError(t, err)

	cache := new(MockLoadCache)
	cache.On("GetLoad", ctx, f.fleetID, f.loadID).Return(cachedCopy, nil).Once()

	factory := new(MockLoadUoWFactory)

	h := commands.NewApplyDriverActionCommandHandler(factory, cache)
	outcome, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, commands.ActionRolledBack, outcome.Phase)
	factory.AssertNotCalled(t, "Create")
}

func TestApplyDriverActionCommandHandler_Handle_NotFoundIsNotRetried(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	cmd, err := commands.NewApplyDriverActionCommand(f.loadID, f.driverClaims(), load.ArrivePickup, actionTime)
	require.NoError(t, err)

	cache := new(MockLoadCache)
	cache.On("GetLoad", ctx, f.fleetID, f.loadID).Return(nil, nil).Once()

	loadRepo := new(MockLoadRepository)
	uow := new(MockDispatchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LoadRepository").Return(loadRepo).Once()
	uow.On("EventRepository").Return(new(MockEventRepository)).Once()
	loadRepo.On("Get", ctx, f.fleetID, f.loadID).
		Return(nil, errs.NewObjectNotFoundError("loadID", f.loadID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyDriverActionCommandHandler(factory, cache)
	outcome, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, commands.ActionRolledBack, outcome.Phase)
	// A single Create call proves not-found was treated as permanent.
	factory.AssertNumberOfCalls(t, "Create", 1)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApplyDriverActionCommandHandler_Handle_ConflictRollsBackOptimisticUpdate(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	cachedCopy := f.loadInStatus(t, load.Assigned)
	stored := f.loadInStatus(t, load.Assigned)

	cmd, err := commands.NewApplyDriverActionCommand(f.loadID, f.driverClaims(), load.ArrivePickup, actionTime)
	require.NoError(t, err)

	cache := new(MockLoadCache)
	cache.On("GetLoad", ctx, f.fleetID, f.loadID).Return(cachedCopy, nil).Once()
	cache.On("PutLoad", ctx, mock.AnythingOfType("*load.Load")).Return(nil).Once()
	cache.On("InvalidateLoad", ctx, f.fleetID, f.loadID).Return(nil).Once()

	loadRepo := new(MockLoadRepository)
	uow := new(MockDispatchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LoadRepository").Return(loadRepo).Once()
	uow.On("EventRepository").Return(new(MockEventRepository)).Once()
	loadRepo.On("Get", ctx, f.fleetID, f.loadID).Return(stored, nil).Once()
	loadRepo.On("UpdateWithVersion", ctx, stored, mock.AnythingOfType("time.Time")).
		Return(errs.NewConflictError("load", f.loadID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyDriverActionCommandHandler(factory, cache)
	outcome, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, commands.ActionRolledBack, outcome.Phase)
	// The speculative cache entry must be discarded after the failed write.
	cache.AssertCalled(t, "InvalidateLoad", ctx, f.fleetID, f.loadID)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	cache.AssertExpectations(t)
}

func TestApplyDriverActionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ApplyDriverActionCommand{} // not constructed properly

	h := commands.NewApplyDriverActionCommandHandler(new(MockLoadUoWFactory), new(MockLoadCache))
	outcome, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, commands.ActionRolledBack, outcome.Phase)
}
