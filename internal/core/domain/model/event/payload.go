package event

import (
	"encoding/json"
	"fmt"
	"time"

	"carrierops/internal/pkg/errs"
)

// DocumentType classifies attached freight paperwork.
type DocumentType string

const (
	DocumentBOL              DocumentType = "BOL"
	DocumentPOD              DocumentType = "POD"
	DocumentRateConfirmation DocumentType = "RATE_CONFIRMATION"
	DocumentInvoice          DocumentType = "INVOICE"
	DocumentReceipt          DocumentType = "RECEIPT"
	DocumentOther            DocumentType = "OTHER"
)

// Validate checks that the document type belongs to the closed vocabulary.
func (d DocumentType) Validate() error {
	switch d {
	case DocumentBOL, DocumentPOD, DocumentRateConfirmation, DocumentInvoice,
		DocumentReceipt, DocumentOther:
		return nil
	default:
		return errs.NewValueIsInvalidError("document type")
	}
}

// String returns the wire name of the document type.
func (d DocumentType) String() string {
	return string(d)
}

// Payload is the tagged union of per-event-type data. Each event type has
// exactly one payload type; EventType is the tag. The unexported marker method
// keeps the union closed to this package.
type Payload interface {
	EventType() Type
	isPayload()
}

// StatusChangedPayload records a plain status move with no side data.
type StatusChangedPayload struct {
	PreviousStatus string `json:"previousStatus"`
	NewStatus      string `json:"newStatus"`
}

func (StatusChangedPayload) EventType() Type { return TypeStatusChanged }
func (StatusChangedPayload) isPayload()      {}

// StopCompletedPayload records a status move that also completed a stop.
type StopCompletedPayload struct {
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	StopID         string    `json:"stopId"`
	StopType       string    `json:"stopType"`
	ActualTime     time.Time `json:"actualTime"`
}

func (StopCompletedPayload) EventType() Type { return TypeStopCompleted }
func (StopCompletedPayload) isPayload()      {}

// LoadCreatedPayload records the initial status a load was created in.
type LoadCreatedPayload struct {
	Status string `json:"status"`
}

func (LoadCreatedPayload) EventType() Type { return TypeLoadCreated }
func (LoadCreatedPayload) isPayload()      {}

// LoadAssignedPayload records an initial driver/vehicle assignment.
type LoadAssignedPayload struct {
	PreviousStatus string `json:"previousStatus"`
	NewStatus      string `json:"newStatus"`
	DriverID       string `json:"driverId"`
	VehicleID      string `json:"vehicleId"`
}

func (LoadAssignedPayload) EventType() Type { return TypeLoadAssigned }
func (LoadAssignedPayload) isPayload()      {}

// LoadReassignedPayload records a replacement assignment. The previous
// references are always present, even when they were null, so the audit trail
// survives the destructive update.
type LoadReassignedPayload struct {
	PreviousStatus    string  `json:"previousStatus"`
	NewStatus         string  `json:"newStatus"`
	PreviousDriverID  *string `json:"previousDriverId"`
	PreviousVehicleID *string `json:"previousVehicleId"`
	DriverID          string  `json:"driverId"`
	VehicleID         string  `json:"vehicleId"`
}

func (LoadReassignedPayload) EventType() Type { return TypeLoadReassigned }
func (LoadReassignedPayload) isPayload()      {}

// LoadUnassignedPayload records the clearing of an assignment, preserving the
// previous references for the audit trail.
type LoadUnassignedPayload struct {
	PreviousStatus    string  `json:"previousStatus"`
	NewStatus         string  `json:"newStatus"`
	PreviousDriverID  *string `json:"previousDriverId"`
	PreviousVehicleID *string `json:"previousVehicleId"`
}

func (LoadUnassignedPayload) EventType() Type { return TypeLoadUnassigned }
func (LoadUnassignedPayload) isPayload()      {}

// LoadCancelledPayload records a cancellation and its reason.
type LoadCancelledPayload struct {
	PreviousStatus string `json:"previousStatus"`
	NewStatus      string `json:"newStatus"`
	Reason         string `json:"reason"`
}

func (LoadCancelledPayload) EventType() Type { return TypeLoadCancelled }
func (LoadCancelledPayload) isPayload()      {}

// LoadReactivatedPayload records a cancelled load returning to draft.
type LoadReactivatedPayload struct {
	PreviousStatus string `json:"previousStatus"`
	NewStatus      string `json:"newStatus"`
}

func (LoadReactivatedPayload) EventType() Type { return TypeLoadReactivated }
func (LoadReactivatedPayload) isPayload()      {}

// DocumentUploadedPayload records paperwork attached to a load. Storage of the
// document itself is outside this core; only the reference is audited.
type DocumentUploadedPayload struct {
	DocumentID   string `json:"documentId"`
	DocumentType string `json:"documentType"`
}

func (DocumentUploadedPayload) EventType() Type { return TypeDocumentUploaded }
func (DocumentUploadedPayload) isPayload()      {}

// MarshalPayload serializes a payload to JSON for persistence.
func MarshalPayload(p Payload) ([]byte, error) {
	if p == nil {
		return nil, errs.NewValueIsRequiredError("payload")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", p.EventType(), err)
	}
	return data, nil
}

// UnmarshalPayload reconstructs the typed payload for the given event type.
// The switch is exhaustive over the vocabulary; an unknown type is rejected.
func UnmarshalPayload(t Type, data []byte) (Payload, error) {
	decode := func(target Payload) (Payload, error) {
		if err := json.Unmarshal(data, target); err != nil {
			return nil, fmt.Errorf("unmarshal %s payload: %w", t, err)
		}
		return target, nil
	}

	switch t {
	case TypeStatusChanged:
		p, err := decode(&StatusChangedPayload{})
		if err != nil {
			return nil, err
		}
		return *p.(*StatusChangedPayload), nil
	case TypeStopCompleted:
		p, err := decode(&StopCompletedPayload{})
		if err != nil {
			return nil, err
		}
		return *p.(*StopCompletedPayload), nil
	case TypeLoadCreated:
		p, err := decode(&LoadCreatedPayload{})
		if err != nil {
			return nil, err
		}
		return *p.(*LoadCreatedPayload), nil
	case TypeLoadAssigned:
		p, err := decode(&LoadAssignedPayload{})
		if err != nil {
			return nil, err
		}
		return *p.(*LoadAssignedPayload), nil
	case TypeLoadReassigned:
		p, err := decode(&LoadReassignedPayload{})
		if err != nil {
			return nil, err
		}
		return *p.(*LoadReassignedPayload), nil
	case TypeLoadUnassigned:
		p, err := decode(&LoadUnassignedPayload{})
		if err != nil {
			return nil, err
		}
		return *p.(*LoadUnassignedPayload), nil
	case TypeLoadCancelled:
		p, err := decode(&LoadCancelledPayload{})
		if err != nil {
			return nil, err
		}
		return *p.(*LoadCancelledPayload), nil
	case TypeLoadReactivated:
		p, err := decode(&LoadReactivatedPayload{})
		if err != nil {
			return nil, err
		}
		return *p.(*LoadReactivatedPayload), nil
	case TypeDocumentUploaded:
		p, err := decode(&DocumentUploadedPayload{})
		if err != nil {
			return nil, err
		}
		return *p.(*DocumentUploadedPayload), nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("event type",
			fmt.Errorf("%q is not in the event vocabulary", string(t)))
	}
}
