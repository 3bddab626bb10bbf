package usecase

import (
	"context"

	"platter/internal/domain/entity"
	"platter/internal/domain/repository"
	"platter/internal/domain/service"

	"github.com/google/uuid"
)

// CreateRestaurantInput defines the data an owner supplies to publish a restaurant.
type CreateRestaurantInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	FoodType    string `json:"foodType"`
}

// UpdateRestaurantInput is a partial restaurant update. Nil fields are left untouched.
type UpdateRestaurantInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	FoodType    *string `json:"foodType"`
}

// ListRestaurantsInput filters the public restaurant listing.
type ListRestaurantsInput struct {
	Page    int    `query:"page"`
	PerPage int    `query:"perPage"`
	Search  string `query:"search"`
}

// ListCustomersInput pages through a restaurant's customer listing.
type ListCustomersInput struct {
	Page    int `query:"page"`
	PerPage int `query:"perPage"`
}

// RestaurantListOutput is one page of restaurants.
type RestaurantListOutput struct {
	Restaurants []*entity.Restaurant `json:"restaurants"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	TotalPages  int                  `json:"totalPages"`
}

// CustomerListOutput is one page of a restaurant's customers with their
// blocklist state.
type CustomerListOutput struct {
	Customers  []*repository.RestaurantCustomer `json:"customers"`
	Total      int64                            `json:"total"`
	Page       int                              `json:"page"`
	TotalPages int                              `json:"totalPages"`
}

// RestaurantUsecase covers the restaurant lifecycle and the owner-side
// blocklist management.
type RestaurantUsecase interface {
	Create(ctx context.Context, caller service.Caller, input *CreateRestaurantInput) (*entity.Restaurant, error)
	Get(ctx context.Context, caller service.Caller, id uuid.UUID) (*entity.Restaurant, error)
	Update(ctx context.Context, caller service.Caller, id uuid.UUID, input *UpdateRestaurantInput) (*entity.Restaurant, error)
	List(ctx context.Context, caller service.Caller, input *ListRestaurantsInput) (*RestaurantListOutput, error)
	ListOwned(ctx context.Context, caller service.Caller, input *ListRestaurantsInput) (*RestaurantListOutput, error)

	// Delete removes the restaurant and cascades over its blocklist entries,
	// meals and orders.
	Delete(ctx context.Context, caller service.Caller, id uuid.UUID) error

	// ListCustomers returns the users who ordered from the restaurant,
	// flagged with their blocklist state. Owner of the restaurant only.
	ListCustomers(ctx context.Context, caller service.Caller, restaurantID uuid.UUID, input *ListCustomersInput) (*CustomerListOutput, error)

	// BlockUser and UnblockUser manage the restaurant's ordering denylist.
	// Both are idempotent.
	BlockUser(ctx context.Context, caller service.Caller, restaurantID, userID uuid.UUID) error
	UnblockUser(ctx context.Context, caller service.Caller, restaurantID, userID uuid.UUID) error
}
