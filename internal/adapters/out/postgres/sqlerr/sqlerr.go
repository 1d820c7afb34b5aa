// Package sqlerr classifies database driver failures for the repositories.
// Connection-level failures are wrapped as TransientStorageError, which the
// action orchestrator may retry; everything else passes through untouched so
// business errors keep their kind.
package sqlerr

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"carrierops/internal/pkg/errs"
)

// Wrap classifies err for the named storage operation. Returns nil for nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if isTransient(err) {
		return errs.NewTransientStorageError(op, err)
	}
	return err
}

func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
