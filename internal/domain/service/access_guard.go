package service

import (
	"context"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// Caller is the authenticated identity attached to every request by the
// transport layer. The core trusts it as given.
type Caller struct {
	ID   uuid.UUID
	Role entity.Role
}

// AccessGuard is the single authorization decision consulted before every
// resource operation. The checks compose in a fixed order -- role membership,
// then ownership, then blocklist -- and short-circuit on the first failure
// with one typed error, never an aggregate.
type AccessGuard interface {
	// RequireRole rejects callers whose role is not in the allow-list.
	RequireRole(caller Caller, allowed ...entity.Role) error

	// RequireRestaurantOwner rejects callers who do not own the restaurant.
	// Non-owner roles are rejected outright.
	RequireRestaurantOwner(caller Caller, restaurant *entity.Restaurant) error

	// RequireOrderActor rejects callers who are neither the owner of the
	// order's restaurant nor the user who placed the order. Any other role,
	// including admin, is rejected.
	RequireOrderActor(caller Caller, order *entity.Order, restaurant *entity.Restaurant) error

	// CheckBlocklist rejects callers in the user role that the restaurant has
	// blocked from ordering.
	CheckBlocklist(ctx context.Context, caller Caller, restaurantID uuid.UUID) error
}
