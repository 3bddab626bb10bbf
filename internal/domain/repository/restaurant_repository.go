package repository

import (
	"context"
	"errors"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is returned when a restaurant id does not resolve.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ListRestaurantsQuery filters the restaurant listing.
type ListRestaurantsQuery struct {
	Page
	Search  string    // Optional case-insensitive match against name and food type.
	OwnerID uuid.UUID // Non-nil UUID restricts to a single owner's restaurants.
}

// RestaurantRepository defines the operations for restaurant persistence.
type RestaurantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	Create(ctx context.Context, restaurant *entity.Restaurant) error

	Update(ctx context.Context, restaurant *entity.Restaurant) error

	// Delete removes the restaurant row only; the usecase orchestrates the
	// cascade over meals, orders and blocklist entries first.
	Delete(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context, query ListRestaurantsQuery) ([]*entity.Restaurant, int64, error)

	// ListIDsByOwner returns the ids of every restaurant the owner has,
	// used to scope the owner's order listing.
	ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
}
