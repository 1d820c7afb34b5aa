package commands

import (
	"context"
	"errors"

	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/services"
	"carrierops/internal/pkg/errs"
)

// AttachDocumentCommandHandler records document uploads in the audit trail.
// Dispatchers may attach paperwork to any load in their fleet; a driver only
// to the load currently assigned to them.
//
// Attaching a document never changes the load's status, so there is no
// optimistic phase and no version check; the event append is the whole write.
type AttachDocumentCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewAttachDocumentCommandHandler creates a handler for document uploads.
func NewAttachDocumentCommandHandler(uowFactory LoadUoWFactory) AttachDocumentCommandHandler {
	return AttachDocumentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the load exists in the actor's fleet, authorizes the actor,
// and appends the DOCUMENT_UPLOADED event.
func (h AttachDocumentCommandHandler) Handle(ctx context.Context, command AttachDocumentCommand) (*event.Event, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	claims := command.Claims()
	fleetID := claims.FleetID

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	l, err := uow.LoadRepository().Get(ctx, fleetID, command.LoadID())
	if err != nil {
		return nil, err
	}

	if dispatchErr := services.AssertDispatcherActionAllowed(claims); dispatchErr != nil {
		driverErr := services.AssertDriverActionAllowed(l, claims)
		if driverErr != nil {
			if errors.Is(driverErr, errs.ErrUnauthenticated) {
				return nil, dispatchErr
			}
			return nil, driverErr
		}
	}

	uploadedEvent, err := event.NewEvent(
		kernel.NewUUID(),
		fleetID,
		l.ID(),
		claims.UID,
		event.DocumentUploadedPayload{
			DocumentID:   command.DocumentID().String(),
			DocumentType: command.DocumentType().String(),
		},
		command.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.EventRepository().Append(ctx, uploadedEvent); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return uploadedEvent, nil
}
