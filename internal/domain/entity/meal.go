package entity

import (
	"time"

	"github.com/google/uuid"
)

// Meal is a menu item belonging to exactly one restaurant. The restaurant
// reference is fixed at creation; moving a meal between restaurants is not
// supported.
type Meal struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Description  string
	Price        float64 // Unit price. Never negative.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
