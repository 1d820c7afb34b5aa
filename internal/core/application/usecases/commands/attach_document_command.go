package commands

import (
	"errors"
	"time"

	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/identity"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/pkg/errs"
	"carrierops/internal/pkg/guard"
)

var ErrAttachDocumentCommandIsNotConstructed = errors.New(
	"AttachDocumentCommand must be created via NewAttachDocumentCommand constructor",
)

// AttachDocumentCommand represents a request to record freight paperwork
// against a load: a bill of lading, proof of delivery, rate confirmation,
// and so on. The document bytes live in object storage elsewhere; this
// command audits the reference.
type AttachDocumentCommand struct { //nolint:recvcheck //using for validation
	loadID       kernel.UUID
	claims       identity.Claims
	documentID   kernel.UUID
	documentType event.DocumentType
	now          time.Time

	guard guard.ConstructorGuard
}

// NewAttachDocumentCommand creates a command to record one document upload.
func NewAttachDocumentCommand(
	loadID kernel.UUID,
	claims identity.Claims,
	documentID kernel.UUID,
	documentType event.DocumentType,
	now time.Time,
) (AttachDocumentCommand, error) {
	cmd := AttachDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setClaims(claims),
		cmd.setDocumentID(documentID),
		cmd.setDocumentType(documentType),
		cmd.setNow(now),
	); err != nil {
		return AttachDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAttachDocumentCommandIsNotConstructed)
}

// LoadID returns the load the document belongs to.
func (c AttachDocumentCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Claims returns the verified identity of the uploader.
func (c AttachDocumentCommand) Claims() identity.Claims {
	return c.claims
}

// DocumentID returns the storage reference of the uploaded document.
func (c AttachDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// DocumentType returns the paperwork classification.
func (c AttachDocumentCommand) DocumentType() event.DocumentType {
	return c.documentType
}

// Now returns the upload moment.
func (c AttachDocumentCommand) Now() time.Time {
	return c.now
}

func (c *AttachDocumentCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *AttachDocumentCommand) setClaims(claims identity.Claims) error {
	if err := claims.Validate(); err != nil {
		return err
	}
	c.claims = claims
	return nil
}

func (c *AttachDocumentCommand) setDocumentID(documentID kernel.UUID) error {
	if err := documentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("documentID", err)
	}
	c.documentID = documentID
	return nil
}

func (c *AttachDocumentCommand) setDocumentType(documentType event.DocumentType) error {
	if err := documentType.Validate(); err != nil {
		return err
	}
	c.documentType = documentType
	return nil
}

func (c *AttachDocumentCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	c.now = now
	return nil
}
