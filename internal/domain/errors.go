package domain

import "github.com/pkg/errors"

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

// Models lists every persisted type, in migration order.
func Models() []any {
	return []any{&Activity{}, &Todo{}}
}
