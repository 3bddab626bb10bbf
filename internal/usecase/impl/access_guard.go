// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accessGuard implements service.AccessGuard. It is the one place where role
// membership, ownership and blocklist rules are decided; every resource
// usecase delegates here instead of re-checking inline.
type accessGuard struct {
	blockedRepo repository.BlockedUserRepository
}

// AccessGuardParams holds dependencies for the access guard, injected by Fx.
type AccessGuardParams struct {
	fx.In

	BlockedRepo repository.BlockedUserRepository
}

// NewAccessGuard is the constructor for accessGuard.
func NewAccessGuard(params AccessGuardParams) service.AccessGuard {
	return &accessGuard{blockedRepo: params.BlockedRepo}
}

// RequireRole rejects callers whose role is not in the allow-list.
func (g *accessGuard) RequireRole(caller service.Caller, allowed ...entity.Role) error {
	if entity.Roles(allowed).Contains(caller.Role) {
		return nil
	}

	return errors.Wrapf(domainerrors.ErrForbidden, "role %s is not permitted", caller.Role)
}

// RequireRestaurantOwner rejects callers who do not own the restaurant.
func (g *accessGuard) RequireRestaurantOwner(caller service.Caller, restaurant *entity.Restaurant) error {
	if caller.Role != entity.RoleOwner {
		return errors.Wrapf(domainerrors.ErrForbidden, "role %s cannot manage restaurants", caller.Role)
	}
	if !restaurant.IsOwnedBy(caller.ID) {
		return errors.Wrap(domainerrors.ErrForbidden, "caller does not own this restaurant")
	}

	return nil
}

// RequireOrderActor rejects callers who are neither the owner of the order's
// restaurant nor the placer. Admin holds no order privileges.
func (g *accessGuard) RequireOrderActor(caller service.Caller, order *entity.Order, restaurant *entity.Restaurant) error {
	switch caller.Role {
	case entity.RoleOwner:
		if !restaurant.IsOwnedBy(caller.ID) {
			return errors.Wrap(domainerrors.ErrForbidden, "caller does not own the order's restaurant")
		}
	case entity.RoleUser:
		if !order.IsPlacedBy(caller.ID) {
			return errors.Wrap(domainerrors.ErrForbidden, "caller did not place this order")
		}
	default:
		return errors.Wrapf(domainerrors.ErrForbidden, "role %s has no order privileges", caller.Role)
	}

	return nil
}

// CheckBlocklist rejects customers the restaurant has blocked. Owners and
// admins are never subject to the blocklist.
func (g *accessGuard) CheckBlocklist(ctx context.Context, caller service.Caller, restaurantID uuid.UUID) error {
	if caller.Role != entity.RoleUser {
		return nil
	}

	blocked, err := g.blockedRepo.IsBlocked(ctx, restaurantID, caller.ID)
	if err != nil {
		return errors.Wrap(err, "failed to check blocklist")
	}
	if blocked {
		return errors.Wrap(domainerrors.ErrBlockedByRestaurant, "caller is blocked by the restaurant")
	}

	return nil
}
