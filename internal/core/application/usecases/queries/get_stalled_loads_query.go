package queries

import (
	"errors"
	"time"

	"carrierops/internal/pkg/errs"
	"carrierops/internal/pkg/guard"
)

var ErrGetStalledLoadsQueryIsNotConstructed = errors.New(
	"GetStalledLoadsQuery must be created via NewGetStalledLoadsQuery constructor",
)

// GetStalledLoadsQuery finds loads that are supposed to be moving but have
// not been touched for longer than the threshold: assigned or en-route loads
// whose last mutation is older than the cutoff. Used by the monitoring job to
// flag freight that may be stuck.
//
// The query is deliberately cross-fleet; the job it serves watches the whole
// system, not one tenant.
type GetStalledLoadsQuery struct {
	threshold time.Duration
	now       time.Time

	guard guard.ConstructorGuard
}

// NewGetStalledLoadsQuery creates a query for loads idle longer than threshold
// as of now.
func NewGetStalledLoadsQuery(threshold time.Duration, now time.Time) (GetStalledLoadsQuery, error) {
	if threshold <= 0 {
		return GetStalledLoadsQuery{}, errs.NewValueIsInvalidError("threshold")
	}
	if now.IsZero() {
		return GetStalledLoadsQuery{}, errs.NewValueIsRequiredError("now")
	}

	return GetStalledLoadsQuery{
		threshold: threshold,
		now:       now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStalledLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetStalledLoadsQueryIsNotConstructed)
}

// Cutoff returns the moment before which a load's last update counts as stalled.
func (q GetStalledLoadsQuery) Cutoff() time.Time {
	return q.now.Add(-q.threshold)
}
