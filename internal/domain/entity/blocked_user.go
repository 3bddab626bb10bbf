package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlockedUser records that a restaurant denies ordering access to a user.
// Existence of a record is the whole semantics: at most one record exists per
// (restaurant, user) pair and repeated blocks are no-ops.
type BlockedUser struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	UserID       uuid.UUID
	CreatedAt    time.Time
}
