package database

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when the row targeted by an update or delete
	// does not exist.
	ErrNotFound = errors.New("not found")
	// ErrCapacity is returned when an assignment would exceed the slot
	// capacity limit.
	ErrCapacity = errors.New("slot capacity reached")
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (duplicate DNI, duplicate assignment).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// IsForeignKeyViolation reports whether err is a Postgres foreign-key
// violation (e.g. a payment for a non-existent alumna).
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
