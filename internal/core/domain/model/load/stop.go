package load

import (
	"fmt"
	"time"

	"carrierops/internal/pkg/errs"
)

// StopType distinguishes pickup waypoints from delivery waypoints.
type StopType int

const (
	// StopTypeUnknown represents an invalid or undefined stop type.
	StopTypeUnknown StopType = iota

	// StopPickup is a waypoint where freight is collected.
	StopPickup

	// StopDelivery is a waypoint where freight is dropped off.
	StopDelivery
)

// StopTypeFromString parses the wire name of a stop type ("PICKUP" or "DELIVERY").
func StopTypeFromString(s string) (StopType, error) {
	switch s {
	case "PICKUP":
		return StopPickup, nil
	case "DELIVERY":
		return StopDelivery, nil
	default:
		return StopTypeUnknown, errs.NewValueIsInvalidErrorWithCause("stop type",
			fmt.Errorf("%q is not a valid stop type", s))
	}
}

// Validate checks the stop type belongs to the closed set.
func (t StopType) Validate() error {
	if t != StopPickup && t != StopDelivery {
		return errs.NewValueIsInvalidErrorWithCause("stop type",
			fmt.Errorf("%d is not a valid stop type", t))
	}
	return nil
}

// String returns the wire name of the stop type.
func (t StopType) String() string {
	switch t {
	case StopPickup:
		return "PICKUP"
	case StopDelivery:
		return "DELIVERY"
	default:
		return "UNKNOWN"
	}
}

// Stop is a pickup or delivery waypoint owned exclusively by its load. It has
// no identity outside the load; sequence defines route order within it.
//
// Invariant: isCompleted implies actualTime is set. The only mutation a Stop
// supports is completion, which establishes that invariant; everything else is
// fixed at construction.
type Stop struct {
	stopType      StopType
	sequence      int
	scheduledTime time.Time
	actualTime    *time.Time
	isCompleted   bool
}

// NewStop creates an uncompleted stop at the given zero-based sequence.
func NewStop(stopType StopType, sequence int, scheduledTime time.Time) (Stop, error) {
	if err := stopType.Validate(); err != nil {
		return Stop{}, err
	}
	if sequence < 0 {
		return Stop{}, errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is negative", sequence))
	}
	if scheduledTime.IsZero() {
		return Stop{}, errs.NewValueIsRequiredError("scheduledTime")
	}

	return Stop{
		stopType:      stopType,
		sequence:      sequence,
		scheduledTime: scheduledTime,
	}, nil
}

// RestoreStop reconstructs a stop from persistence, enforcing the
// completed-implies-actual-time invariant on the stored data.
func RestoreStop(
	stopType StopType,
	sequence int,
	scheduledTime time.Time,
	actualTime *time.Time,
	isCompleted bool,
) (Stop, error) {
	stop, err := NewStop(stopType, sequence, scheduledTime)
	if err != nil {
		return Stop{}, err
	}

	if isCompleted && actualTime == nil {
		return Stop{}, errs.NewValueIsInvalidErrorWithCause("stop",
			fmt.Errorf("completed stop at sequence %d has no actual time", sequence))
	}

	stop.actualTime = actualTime
	stop.isCompleted = isCompleted
	return stop, nil
}

// Type returns whether this is a pickup or delivery stop.
func (s Stop) Type() StopType {
	return s.stopType
}

// Sequence returns the zero-based position of the stop in route order.
func (s Stop) Sequence() int {
	return s.sequence
}

// ScheduledTime returns when the stop was planned to happen.
func (s Stop) ScheduledTime() time.Time {
	return s.scheduledTime
}

// ActualTime returns when the stop was actually completed, or nil while the
// stop is still open.
func (s Stop) ActualTime() *time.Time {
	return s.actualTime
}

// IsCompleted reports whether the stop has been completed.
func (s Stop) IsCompleted() bool {
	return s.isCompleted
}

// complete marks the stop done at the given time. Unexported: completion only
// happens by applying a TransitionResult to the owning load.
func (s *Stop) complete(actualTime time.Time) {
	t := actualTime
	s.actualTime = &t
	s.isCompleted = true
}
