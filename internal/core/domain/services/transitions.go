package services

import (
	"strconv"
	"time"

	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
	"carrierops/internal/pkg/errs"
)

// DefaultCancelReason is recorded when a dispatcher cancels without giving one.
const DefaultCancelReason = "No reason provided"

// ComputeDriverTransition computes the lifecycle move for an in-the-field
// driver action. It returns IllegalTransitionError when the load's status does
// not admit the action, and MissingStopError when a stop-completing action
// finds no stop of the required type.
//
// now becomes the actual completion time of any stop the action completes.
func ComputeDriverTransition(l *load.Load, action load.DriverAction, now time.Time) (load.TransitionResult, error) {
	if err := l.Validate(); err != nil {
		return load.TransitionResult{}, err
	}
	if err := action.Validate(); err != nil {
		return load.TransitionResult{}, err
	}

	current := l.Status()

	switch action {
	case load.ArrivePickup:
		if current != load.Assigned {
			return load.TransitionResult{}, illegal(action.String(), current, load.Assigned)
		}
		return statusMove(current, load.AtPickup), nil

	case load.DepartPickup:
		if current != load.AtPickup {
			return load.TransitionResult{}, illegal(action.String(), current, load.AtPickup)
		}
		return stopMove(l, current, load.InTransit, load.StopPickup, now)

	case load.ArriveDelivery:
		if current != load.InTransit {
			return load.TransitionResult{}, illegal(action.String(), current, load.InTransit)
		}
		return statusMove(current, load.AtDelivery), nil

	case load.MarkDelivered:
		if current != load.AtDelivery {
			return load.TransitionResult{}, illegal(action.String(), current, load.AtDelivery)
		}
		return stopMove(l, current, load.Delivered, load.StopDelivery, now)

	default:
		return load.TransitionResult{}, errs.NewValueIsInvalidError("driver action")
	}
}

// ComputeDispatcherTransition computes the lifecycle move for a back-office
// dispatcher action. data is required for ASSIGN and REASSIGN and ignored
// otherwise; reason applies to CANCEL only, defaulting to DefaultCancelReason
// when empty.
//
// Payload validation runs before the status check: a malformed request is
// reported as InvalidPayload even when the transition would also be illegal.
func ComputeDispatcherTransition(
	l *load.Load,
	action load.DispatcherAction,
	data *load.AssignmentData,
	reason string,
) (load.TransitionResult, error) {
	if err := l.Validate(); err != nil {
		return load.TransitionResult{}, err
	}
	if err := action.Validate(); err != nil {
		return load.TransitionResult{}, err
	}

	current := l.Status()

	switch action {
	case load.Assign:
		if err := data.Validate(action); err != nil {
			return load.TransitionResult{}, err
		}
		if current != load.Unassigned && current != load.Draft {
			return load.TransitionResult{}, illegal(action.String(), current, load.Unassigned, load.Draft)
		}
		return load.TransitionResult{
			NextStatus: load.Assigned,
			Assignment: &load.AssignmentChange{DriverID: data.DriverID, VehicleID: data.VehicleID},
			EventPayload: event.LoadAssignedPayload{
				PreviousStatus: current.String(),
				NewStatus:      load.Assigned.String(),
				DriverID:       data.DriverID.String(),
				VehicleID:      data.VehicleID.String(),
			},
		}, nil

	case load.Reassign:
		if err := data.Validate(action); err != nil {
			return load.TransitionResult{}, err
		}
		if current != load.Assigned && current != load.AtPickup {
			return load.TransitionResult{}, illegal(action.String(), current, load.Assigned, load.AtPickup)
		}
		return load.TransitionResult{
			NextStatus: load.Assigned,
			Assignment: &load.AssignmentChange{DriverID: data.DriverID, VehicleID: data.VehicleID},
			EventPayload: event.LoadReassignedPayload{
				PreviousStatus:    current.String(),
				NewStatus:         load.Assigned.String(),
				PreviousDriverID:  uuidString(l.DriverID()),
				PreviousVehicleID: uuidString(l.VehicleID()),
				DriverID:          data.DriverID.String(),
				VehicleID:         data.VehicleID.String(),
			},
		}, nil

	case load.Unassign:
		if current != load.Assigned {
			return load.TransitionResult{}, illegal(action.String(), current, load.Assigned)
		}
		return load.TransitionResult{
			NextStatus: load.Unassigned,
			Assignment: &load.AssignmentChange{Clear: true},
			EventPayload: event.LoadUnassignedPayload{
				PreviousStatus:    current.String(),
				NewStatus:         load.Unassigned.String(),
				PreviousDriverID:  uuidString(l.DriverID()),
				PreviousVehicleID: uuidString(l.VehicleID()),
			},
		}, nil

	case load.Cancel:
		if current != load.Draft && current != load.Unassigned && current != load.Assigned {
			return load.TransitionResult{}, illegal(action.String(), current,
				load.Draft, load.Unassigned, load.Assigned)
		}
		if reason == "" {
			reason = DefaultCancelReason
		}
		return load.TransitionResult{
			NextStatus: load.Cancelled,
			EventPayload: event.LoadCancelledPayload{
				PreviousStatus: current.String(),
				NewStatus:      load.Cancelled.String(),
				Reason:         reason,
			},
		}, nil

	case load.Reactivate:
		if current != load.Cancelled {
			return load.TransitionResult{}, illegal(action.String(), current, load.Cancelled)
		}
		return load.TransitionResult{
			NextStatus: load.Draft,
			EventPayload: event.LoadReactivatedPayload{
				PreviousStatus: current.String(),
				NewStatus:      load.Draft.String(),
			},
		}, nil

	default:
		return load.TransitionResult{}, errs.NewValueIsInvalidError("dispatcher action")
	}
}

// statusMove builds a plain status transition with no field mutations.
func statusMove(from, to load.Status) load.TransitionResult {
	return load.TransitionResult{
		NextStatus: to,
		EventPayload: event.StatusChangedPayload{
			PreviousStatus: from.String(),
			NewStatus:      to.String(),
		},
	}
}

// stopMove builds a transition that also completes the first open stop of the
// given type. Stops are addressed by their sequence within the load.
func stopMove(l *load.Load, from, to load.Status, stopType load.StopType, now time.Time) (load.TransitionResult, error) {
	index := l.FirstStopOfType(stopType)
	if index < 0 {
		return load.TransitionResult{}, errs.NewMissingStopError(stopType.String(), l.ID().String())
	}
	stop := l.Stops()[index]

	return load.TransitionResult{
		NextStatus:  to,
		StopUpdates: []load.StopUpdate{{Index: index, ActualTime: now}},
		EventPayload: event.StopCompletedPayload{
			PreviousStatus: from.String(),
			NewStatus:      to.String(),
			StopID:         strconv.Itoa(stop.Sequence()),
			StopType:       stopType.String(),
			ActualTime:     now,
		},
	}, nil
}

func illegal(action string, current load.Status, allowed ...load.Status) error {
	names := make([]string, len(allowed))
	for i, s := range allowed {
		names[i] = s.String()
	}
	return errs.NewIllegalTransitionError(action, current.String(), names...)
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
