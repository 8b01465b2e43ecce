package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"
)

var (
	ErrNotFound         = errors.New("store: record not found")
	ErrConflict         = errors.New("store: concurrent modification")
	ErrUnavailable      = errors.New("store: unavailable")
	ErrUnknownField     = errors.New("store: unknown field")
	ErrInvalidPredicate = errors.New("store: invalid predicate")
	ErrInvalidDirection = errors.New("store: invalid sort direction")
)

// Postgres SQLSTATE codes that signal a write-write conflict.
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// classify folds driver errors into the gateway's sentinels. Errors that do
// not match any class are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case sqlStateSerializationFailure, sqlStateDeadlockDetected:
			return errors.Join(ErrConflict, err)
		}
		if pqErr.Code.Class() == "08" {
			return errors.Join(ErrUnavailable, err)
		}
		return err
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return errors.Join(ErrUnavailable, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return errors.Join(ErrUnavailable, err)
	}

	return err
}
