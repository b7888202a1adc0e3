// internal/core/domain/errors.go
package domain

import "errors"

var (
	// ErrNotOwned is returned when the variant does not belong to the tenant or is archived.
	ErrNotOwned = errors.New("variant not owned by tenant")
	// ErrInvalidArgument covers rejected input such as non-positive quantities.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when no live event exists for a key.
	ErrNotFound = errors.New("not found")
	// ErrTransientStore marks connectivity or timeout failures of the backing store.
	ErrTransientStore = errors.New("transient store failure")
)
