package usecase

import (
	"context"

	"platter/internal/domain/entity"
	"platter/internal/domain/service"

	"github.com/google/uuid"
)

// CreateMealInput defines the data an owner supplies to add a meal to a menu.
type CreateMealInput struct {
	RestaurantID uuid.UUID `json:"restaurantId" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" validate:"gte=0"`
}

// UpdateMealInput is a partial meal update. Nil fields are left untouched;
// the restaurant reference cannot be changed.
type UpdateMealInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

// ListMealsInput filters the meal listing. A restaurant filter triggers the
// blocklist check for customer callers.
type ListMealsInput struct {
	Page         int       `query:"page"`
	PerPage      int       `query:"perPage"`
	Search       string    `query:"search"`
	RestaurantID uuid.UUID `query:"restaurantId"`
}

// MealListOutput is one page of meals.
type MealListOutput struct {
	Meals      []*entity.Meal `json:"meals"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

// MealUsecase covers the meal lifecycle.
type MealUsecase interface {
	Create(ctx context.Context, caller service.Caller, input *CreateMealInput) (*entity.Meal, error)
	Get(ctx context.Context, caller service.Caller, id uuid.UUID) (*entity.Meal, error)
	Update(ctx context.Context, caller service.Caller, id uuid.UUID, input *UpdateMealInput) (*entity.Meal, error)
	Delete(ctx context.Context, caller service.Caller, id uuid.UUID) error
	List(ctx context.Context, caller service.Caller, input *ListMealsInput) (*MealListOutput, error)
}
