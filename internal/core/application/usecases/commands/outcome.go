package commands

import (
	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/load"
)

// ActionPhase names how far a lifecycle action got. It describes the durable
// state, not the optimistic one: only Committed means the change exists.
type ActionPhase int

const (
	// ActionPending means the optimistic cache update was applied but the
	// authoritative write has not finished. Handlers never return this phase;
	// it exists for callers that observe an action in flight.
	ActionPending ActionPhase = iota

	// ActionCommitted means the load mutation and its audit event are
	// durable and the caches were invalidated.
	ActionCommitted

	// ActionRolledBack means nothing durable changed. Any optimistic cache
	// update was discarded.
	ActionRolledBack
)

// String returns the phase name for logs.
func (p ActionPhase) String() string {
	switch p {
	case ActionPending:
		return "PENDING"
	case ActionCommitted:
		return "COMMITTED"
	case ActionRolledBack:
		return "ROLLED_BACK"
	default:
		return "UNKNOWN"
	}
}

// ActionOutcome reports the result of a lifecycle action. On ActionCommitted
// both Load (post-transition) and Event (the appended audit record) are set;
// on ActionRolledBack both are nil and the accompanying error says why.
type ActionOutcome struct {
	Phase ActionPhase
	Load  *load.Load
	Event *event.Event
}

func rolledBack() ActionOutcome {
	return ActionOutcome{Phase: ActionRolledBack}
}

func committed(l *load.Load, e *event.Event) ActionOutcome {
	return ActionOutcome{Phase: ActionCommitted, Load: l, Event: e}
}
