// Package store implements the whitelisted CRUD layer over the portfolio
// content tables. No handler queries the database directly; all access goes
// through the stores in this package.
package store

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCollection is returned when a name does not match any
	// registered collection.
	ErrInvalidCollection = errors.New("invalid collection")

	// ErrNoValidFields is returned when an update payload contains no
	// writable columns after filtering.
	ErrNoValidFields = errors.New("no valid fields")
)
