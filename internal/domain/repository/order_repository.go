package repository

import (
	"context"
	"errors"
	"time"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order id does not resolve.
var ErrOrderNotFound = errors.New("order not found")

// ListOrdersQuery filters the order listing. Orders are always returned
// newest first.
type ListOrdersQuery struct {
	Page
	Status        entity.OrderStatus // Zero value means any status.
	UserID        uuid.UUID          // Non-nil UUID restricts to one placer.
	RestaurantIDs []uuid.UUID        // Non-empty restricts to these restaurants.
}

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate loads the order under a row-level write lock so that
	// concurrent transition attempts on the same order are serialized. Only
	// meaningful inside a TransactionManager.Execute block.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Create persists the order with its line snapshots and the seeded track.
	Create(ctx context.Context, order *entity.Order) error

	// AppendTransition atomically sets the order status and appends the
	// matching track entry. The track is never rewritten.
	AppendTransition(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus, at time.Time) error

	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByRestaurant removes every order of a restaurant (cascade step).
	DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error

	// DeleteByUser removes every order placed by a user (cascade step).
	DeleteByUser(ctx context.Context, userID uuid.UUID) error

	List(ctx context.Context, query ListOrdersQuery) ([]*entity.Order, int64, error)
}
