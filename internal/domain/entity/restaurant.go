package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is a storefront published by an owner account. Meals, orders and
// blocklist entries all hang off a restaurant and are removed with it.
type Restaurant struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // The owning account. Must hold the owner role.
	Name        string
	Description string
	FoodType    string // Free-form cuisine tag, e.g. "italian".
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether the given account owns this restaurant.
func (r *Restaurant) IsOwnedBy(userID uuid.UUID) bool {
	return r.OwnerID == userID
}
