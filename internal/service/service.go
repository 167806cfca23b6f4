package service

import (
	"time"

	"github.com/pkg/errors"

	"github.com/Tomlord1122/activity-todo-backend/internal/domain"
)

var (
	// ErrNotFound is returned (wrapped) when the requested id does not exist.
	// Test with errors.Is.
	ErrNotFound = domain.ErrNotFound

	// ErrInvalidTitle is returned when a zero field.Title reaches a service.
	ErrInvalidTitle = errors.New("title cannot be empty")
)

// clock returns the current time at the precision every supported store
// can round-trip.
func clock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// wrap keeps ErrNotFound recognisable while attaching context to it, and
// wraps every other failure as a store error.
func wrap(err error, format string, args ...any) error {
	if errors.Is(err, domain.ErrNotFound) {
		return errors.WithMessagef(err, format, args...)
	}
	return errors.Wrapf(err, format, args...)
}
