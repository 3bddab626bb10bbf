package repository

import (
	"context"
	"errors"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMealNotFound is returned when a meal id does not resolve.
var ErrMealNotFound = errors.New("meal not found")

// ListMealsQuery filters the meal listing.
type ListMealsQuery struct {
	Page
	Search       string
	RestaurantID uuid.UUID // Non-nil UUID restricts to a single restaurant's menu.
}

// MealRepository defines the operations for meal persistence.
type MealRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error)

	Create(ctx context.Context, meal *entity.Meal) error

	// Update modifies name, description and price. The restaurant reference
	// is immutable after creation.
	Update(ctx context.Context, meal *entity.Meal) error

	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByRestaurant removes every meal of a restaurant (cascade step).
	DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error

	List(ctx context.Context, query ListMealsQuery) ([]*entity.Meal, int64, error)
}
