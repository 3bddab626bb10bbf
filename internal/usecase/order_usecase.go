package usecase

import (
	"context"

	"platter/internal/domain/entity"
	"platter/internal/domain/service"

	"github.com/google/uuid"
)

// OrderLineInput references one meal in an order being placed. Counts below
// one are coerced to one.
type OrderLineInput struct {
	MealID uuid.UUID `json:"id" validate:"required"`
	Count  int       `json:"count"`
}

// PlaceOrderInput defines the data a customer supplies to place an order.
type PlaceOrderInput struct {
	RestaurantID uuid.UUID        `json:"restaurantId" validate:"required"`
	Lines        []OrderLineInput `json:"meals" validate:"required"`
}

// ListOrdersInput filters the order listing. Customers see their own orders,
// owners see the orders of their restaurants.
type ListOrdersInput struct {
	Page    int                `query:"page"`
	PerPage int                `query:"perPage"`
	Status  entity.OrderStatus `query:"status"`
}

// OrderListOutput is one page of orders, newest first.
type OrderListOutput struct {
	Orders     []*entity.Order `json:"orders"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

// OrderUsecase covers order placement and the status lifecycle.
type OrderUsecase interface {
	// Place creates an order with denormalized meal snapshots and the track
	// seeded with the placed entry. Customer role only.
	Place(ctx context.Context, caller service.Caller, input *PlaceOrderInput) (*entity.Order, error)

	Get(ctx context.Context, caller service.Caller, id uuid.UUID) (*entity.Order, error)

	List(ctx context.Context, caller service.Caller, input *ListOrdersInput) (*OrderListOutput, error)

	// UpdateStatus applies one transition of the order state machine on
	// behalf of the caller. Legality is decided by the role-gated transition
	// table; accepted transitions update the status and append exactly one
	// track entry, atomically.
	UpdateStatus(ctx context.Context, caller service.Caller, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// Delete removes an order. Only the placer may delete it.
	Delete(ctx context.Context, caller service.Caller, id uuid.UUID) error
}
