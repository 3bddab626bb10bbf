package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderLine is a denormalized snapshot of a meal at order-creation time.
// Later price or name changes to the meal never affect existing orders.
type OrderLine struct {
	MealID uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Price  float64   `json:"price"`
	Count  int       `json:"count"`
}

// TrackEntry is one step of an order's status history.
type TrackEntry struct {
	Status OrderStatus `json:"status"`
	Time   time.Time   `json:"time"`
}

// Order is a purchase placed by a user against a single restaurant.
//
// The Track slice is append-only: it always starts with a StatusPlaced entry
// and gains exactly one entry per accepted transition, so the last entry
// always mirrors the current Status.
type Order struct {
	ID           uuid.UUID
	UserID       uuid.UUID // The placing customer.
	RestaurantID uuid.UUID
	Lines        []OrderLine
	Total        float64 // Sum of line price*count, captured at creation.
	Status       OrderStatus
	Track        []TrackEntry
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsPlacedBy reports whether the given account placed this order.
func (o *Order) IsPlacedBy(userID uuid.UUID) bool {
	return o.UserID == userID
}
