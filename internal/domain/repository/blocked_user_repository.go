package repository

import (
	"context"

	"github.com/google/uuid"
)

// BlockedUserRepository manages the restaurant-scoped ordering denylist.
// The relation is a pure existence check, so all operations are idempotent.
type BlockedUserRepository interface {
	// IsBlocked reports whether a block record exists for the pair.
	IsBlocked(ctx context.Context, restaurantID, userID uuid.UUID) (bool, error)

	// Block inserts a record for the pair if absent. Blocking an already
	// blocked user is a no-op and leaves a single record.
	Block(ctx context.Context, restaurantID, userID uuid.UUID) error

	// Unblock deletes all records for the pair. A no-op when none exist.
	Unblock(ctx context.Context, restaurantID, userID uuid.UUID) error

	// DeleteByRestaurant removes every block entry of a restaurant (cascade step).
	DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error

	// DeleteByUser removes every block entry referencing the user (cascade step).
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
