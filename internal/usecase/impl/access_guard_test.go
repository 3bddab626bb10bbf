package impl

import (
	"context"
	"testing"

	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/service"
	mockRepo "platter/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccessGuard(t *testing.T) (service.AccessGuard, *mockRepo.MockBlockedUserRepository) {
	blockedRepo := mockRepo.NewMockBlockedUserRepository(t)
	guard := NewAccessGuard(AccessGuardParams{BlockedRepo: blockedRepo})

	return guard, blockedRepo
}

func TestAccessGuard_RequireRole(t *testing.T) {
	guard, _ := newAccessGuard(t)

	owner := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}

	require.NoError(t, guard.RequireRole(owner, entity.RoleOwner))
	require.NoError(t, guard.RequireRole(owner, entity.RoleUser, entity.RoleOwner))
	assert.ErrorIs(t, guard.RequireRole(owner, entity.RoleAdmin), domainerrors.ErrForbidden)
	assert.ErrorIs(t, guard.RequireRole(owner), domainerrors.ErrForbidden)
}

func TestAccessGuard_RequireRestaurantOwner(t *testing.T) {
	guard, _ := newAccessGuard(t)

	ownerID := uuid.New()
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: ownerID}

	require.NoError(t, guard.RequireRestaurantOwner(
		service.Caller{ID: ownerID, Role: entity.RoleOwner}, restaurant))

	assert.ErrorIs(t, guard.RequireRestaurantOwner(
		service.Caller{ID: uuid.New(), Role: entity.RoleOwner}, restaurant),
		domainerrors.ErrForbidden)

	// Even an admin may not act as a restaurant owner.
	assert.ErrorIs(t, guard.RequireRestaurantOwner(
		service.Caller{ID: ownerID, Role: entity.RoleAdmin}, restaurant),
		domainerrors.ErrForbidden)
}

func TestAccessGuard_RequireOrderActor(t *testing.T) {
	guard, _ := newAccessGuard(t)

	ownerID := uuid.New()
	placerID := uuid.New()
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: ownerID}
	order := &entity.Order{ID: uuid.New(), UserID: placerID, RestaurantID: restaurant.ID}

	require.NoError(t, guard.RequireOrderActor(
		service.Caller{ID: ownerID, Role: entity.RoleOwner}, order, restaurant))
	require.NoError(t, guard.RequireOrderActor(
		service.Caller{ID: placerID, Role: entity.RoleUser}, order, restaurant))

	assert.ErrorIs(t, guard.RequireOrderActor(
		service.Caller{ID: uuid.New(), Role: entity.RoleOwner}, order, restaurant),
		domainerrors.ErrForbidden)
	assert.ErrorIs(t, guard.RequireOrderActor(
		service.Caller{ID: uuid.New(), Role: entity.RoleUser}, order, restaurant),
		domainerrors.ErrForbidden)
	assert.ErrorIs(t, guard.RequireOrderActor(
		service.Caller{ID: ownerID, Role: entity.RoleAdmin}, order, restaurant),
		domainerrors.ErrForbidden)
}

func TestAccessGuard_CheckBlocklist_BlockedCustomer(t *testing.T) {
	guard, blockedRepo := newAccessGuard(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	restaurantID := uuid.New()

	blockedRepo.EXPECT().IsBlocked(ctx, restaurantID, caller.ID).Return(true, nil)

	err := guard.CheckBlocklist(ctx, caller, restaurantID)

	assert.ErrorIs(t, err, domainerrors.ErrBlockedByRestaurant)
}

func TestAccessGuard_CheckBlocklist_UnblockedCustomer(t *testing.T) {
	guard, blockedRepo := newAccessGuard(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	restaurantID := uuid.New()

	blockedRepo.EXPECT().IsBlocked(ctx, restaurantID, caller.ID).Return(false, nil)

	require.NoError(t, guard.CheckBlocklist(ctx, caller, restaurantID))
}

func TestAccessGuard_CheckBlocklist_SkipsNonCustomers(t *testing.T) {
	guard, _ := newAccessGuard(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	// Owners and admins are never subject to the blocklist; the repository
	// must not even be consulted.
	require.NoError(t, guard.CheckBlocklist(ctx,
		service.Caller{ID: uuid.New(), Role: entity.RoleOwner}, restaurantID))
	require.NoError(t, guard.CheckBlocklist(ctx,
		service.Caller{ID: uuid.New(), Role: entity.RoleAdmin}, restaurantID))
}
