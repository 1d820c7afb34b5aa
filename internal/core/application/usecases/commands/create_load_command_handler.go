package commands

import (
	"context"

	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
	"carrierops/internal/core/domain/services"
)

// CreateLoadCommandHandler registers new loads. The load row and its
// LOAD_CREATED audit event are written in one transaction, so a load can
// never exist without the first entry of its trail.
type CreateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewCreateLoadCommandHandler creates a handler for load registration.
func NewCreateLoadCommandHandler(uowFactory LoadUoWFactory) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the command, builds the aggregate, and persists it with
// its creation event. Only callers holding a dispatching role may create
// loads.
func (h CreateLoadCommandHandler) Handle(ctx context.Context, command CreateLoadCommand) (*load.Load, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	if err := services.AssertDispatcherActionAllowed(command.Claims()); err != nil {
		return nil, err
	}

	stops := make([]load.Stop, 0, len(command.Stops()))
	for i, spec := range command.Stops() {
		stop, err := load.NewStop(spec.Type, i, spec.ScheduledTime)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	fleetID := command.Claims().FleetID
	l, err := load.NewLoad(command.LoadID(), fleetID, stops, command.AsDraft(), command.Now())
	if err != nil {
		return nil, err
	}

	createdEvent, err := event.NewEvent(
		kernel.NewUUID(),
		fleetID,
		l.ID(),
		command.Claims().UID,
		event.LoadCreatedPayload{Status: l.Status().String()},
		command.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LoadRepository().Add(ctx, l); err != nil {
		return nil, err
	}
	if err = uow.EventRepository().Append(ctx, createdEvent); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
