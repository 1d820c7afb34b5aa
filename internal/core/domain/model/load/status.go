package load

import (
	"fmt"

	"carrierops/internal/pkg/errs"
)

// Status represents the lifecycle state of a load. It is a closed set, ordered
// roughly by lifecycle progression:
//
//	DRAFT ──> UNASSIGNED ──> ASSIGNED ──> AT_PICKUP ──> IN_TRANSIT ──> AT_DELIVERY ──> DELIVERED
//	  ^            │             │
//	  │            └──────┬──────┘
//	  │                   v
//	  └─────────────── CANCELLED
//	   (reactivation)
//
// CANCELLED is reachable from DRAFT, UNASSIGNED, and ASSIGNED; DRAFT is
// reachable again only by reactivating a cancelled load. The legality of each
// move is enforced by the transition engines, not by this type; Status only
// names the states and converts to and from their wire form.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is a load still being prepared by a dispatcher, or a cancelled
	// load brought back by reactivation. Drafts are invisible to drivers.
	Draft

	// Unassigned is a complete load waiting for a driver and vehicle.
	Unassigned

	// Assigned means a driver and vehicle are booked but the driver has not
	// yet arrived at the pickup.
	Assigned

	// AtPickup means the driver has arrived at the pickup stop.
	AtPickup

	// InTransit means the pickup is complete and the load is moving.
	InTransit

	// AtDelivery means the driver has arrived at the delivery stop.
	AtDelivery

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is a status, not a deletion: cancelled loads stay queryable
	// and can be reactivated back to Draft.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Draft:      "DRAFT",
		Unassigned: "UNASSIGNED",
		Assigned:   "ASSIGNED",
		AtPickup:   "AT_PICKUP",
		InTransit:  "IN_TRANSIT",
		AtDelivery: "AT_DELIVERY",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "DRAFT",
		Unassigned: "UNASSIGNED",
		Assigned:   "ASSIGNED",
		AtPickup:   "AT_PICKUP",
		InTransit:  "IN_TRANSIT",
		AtDelivery: "AT_DELIVERY",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// StatusFromString parses the wire name of a status ("DRAFT", "IN_TRANSIT", ...).
// Used when reconstructing loads from persistence or parsing requests.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid load status", s))
}

// Validate checks if the Status value belongs to the closed set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
// Delivered is the only terminal state: even Cancelled can be reactivated.
func (s Status) IsTerminal() bool {
	return s == Delivered
}
