package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Tomlord1122/activity-todo-backend/internal/domain"
)

// translate maps gorm's not-found error to domain.ErrNotFound and wraps
// everything else with msg.
func translate(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return errors.Wrap(err, msg)
}
