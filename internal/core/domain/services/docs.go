// Package services contains the domain services that do not belong to a
// single aggregate: the two transition engines that compute load lifecycle
// moves, and the authorization guards that decide who may request them.
//
// The engines are pure functions from (load, action, inputs) to a
// TransitionResult. They never mutate the load and never touch storage; the
// command handlers apply and persist what the engines compute. Keeping the
// engines pure makes every lifecycle rule testable without any infrastructure.
//
// Driver and dispatcher actions are computed by separate engines because their
// rules differ in kind, not just in detail: driver actions follow the route
// and complete stops, dispatcher actions manage assignment and existence. The
// two vocabularies are disjoint and must stay that way.
package services
