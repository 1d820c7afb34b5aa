// Package load contains the Load aggregate and its supporting value objects:
// the lifecycle Status enum, the Stop waypoint, the driver and dispatcher
// action vocabularies, and the TransitionResult produced by the transition
// engines in the services package.
//
// A load is the central entity of the system: a single shipment tracked from
// pickup to delivery inside one fleet (tenant). Its status is the only field
// whose legal value set depends on the current value; every status change
// flows through a transition engine, never through direct mutation.
//
// Stops are value objects owned exclusively by their load. They have no
// identity outside it and are persisted embedded in the load document.
package load
