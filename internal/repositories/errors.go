package repositories

import "errors"

var (
	// ErrNotFound covers both genuinely missing records and ownership
	// mismatches on delete, so absence and lack of permission are
	// indistinguishable to callers.
	ErrNotFound = errors.New("record not found")

	// ErrSelfAction is returned when an actor targets themselves where the
	// relation forbids it (follow, message).
	ErrSelfAction = errors.New("cannot target yourself")
)
