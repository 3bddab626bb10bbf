package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/domain/service"
	mockRepo "platter/internal/mocks/repository"
	mockService "platter/internal/mocks/service"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type restaurantServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	restaurantRepo *mockRepo.MockRestaurantRepository
	userRepo       *mockRepo.MockUserRepository
	blockedRepo    *mockRepo.MockBlockedUserRepository
	guard          *mockService.MockAccessGuard
}

func newRestaurantService(t *testing.T) (usecase.RestaurantUsecase, *restaurantServiceMocks) {
	m := &restaurantServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		blockedRepo:    mockRepo.NewMockBlockedUserRepository(t),
		guard:          mockService.NewMockAccessGuard(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewRestaurantService(RestaurantServiceParams{
		TxManager:      m.txManager,
		RestaurantRepo: m.restaurantRepo,
		UserRepo:       m.userRepo,
		BlockedRepo:    m.blockedRepo,
		Guard:          m.guard,
		Logger:         logger,
	})

	return srv, m
}

func TestRestaurantService_Create_Success(t *testing.T) {
	srv, m := newRestaurantService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}

	m.guard.EXPECT().RequireRole(caller, entity.RoleOwner).Return(nil)
	m.restaurantRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Restaurant")).Return(nil)

	restaurant, err := srv.Create(ctx, caller, &usecase.CreateRestaurantInput{
		Name:     "Thai Corner",
		FoodType: "thai",
	})

	require.NoError(t, err)
	assert.Equal(t, caller.ID, restaurant.OwnerID)
	assert.Equal(t, "Thai Corner", restaurant.Name)
}

func TestRestaurantService_Create_CustomerRejected(t *testing.T) {
	srv, m := newRestaurantService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}

	m.guard.EXPECT().RequireRole(caller, entity.RoleOwner).Return(domainerrors.ErrForbidden)

	_, err := srv.Create(ctx, caller, &usecase.CreateRestaurantInput{Name: "Nope"})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRestaurantService_Update_MissingBeforeOwnership(t *testing.T) {
	srv, m := newRestaurantService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	id := uuid.New()

	// A non-owner probing a missing id learns nothing about ownership:
	// the lookup fails first and the guard is never consulted.
	m.restaurantRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRestaurantNotFound)

	_, err := srv.Update(ctx, caller, id, &usecase.UpdateRestaurantInput{})

	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
	m.guard.AssertNotCalled(t, "RequireRestaurantOwner", mock.Anything, mock.Anything)
}

func TestRestaurantService_Update_ForeignOwnerRejected(t *testing.T) {
	srv, m := newRestaurantService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: uuid.New(), Name: "Not Yours"}

	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireRestaurantOwner(caller, restaurant).Return(domainerrors.ErrForbidden)

	newName := "Mine Now"
	_, err := srv.Update(ctx, caller, restaurant.ID, &usecase.UpdateRestaurantInput{Name: &newName})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRestaurantService_Update_Success(t *testing.T) {
	srv, m := newRestaurantService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: caller.ID, Name: "Old Name", FoodType: "burgers"}

	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireRestaurantOwner(caller, restaurant).Return(nil)
	m.restaurantRepo.EXPECT().Update(ctx, restaurant).Return(nil)

	newName := "New Name"
	updated, err := srv.Update(ctx, caller, restaurant.ID, &usecase.UpdateRestaurantInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "burgers", updated.FoodType)
}

func TestRestaurantService_List_CustomerOnly(t *testing.T) {
	srv, m := newRestaurantService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	restaurants := []*entity.Restaurant{{ID: uuid.New()}}

	m.guard.EXPECT().RequireRole(caller, entity.RoleUser).Return(nil)
	m.restaurantRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(q repository.ListRestaurantsQuery) bool {
			return q.OwnerID == uuid.Nil && q.Search == "thai"
		})).
		Return(restaurants, int64(1), nil)

	output, err := srv.List(ctx, caller, &usecase.ListRestaurantsInput{Search: "thai"})

	require.NoError(t, err)
	assert.Len(t, output.Restaurants, 1)
}

func TestRestaurantService_ListOwned_ScopedToCaller(t *testing.T) {
	srv, m := newRestaurantService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}

	m.guard.EXPECT().RequireRole(caller, entity.RoleOwner).Return(nil)
	m.restaurantRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(q repository.ListRestaurantsQuery) bool {
			return q.OwnerID == caller.ID
		})).
		Return([]*entity.Restaurant{}, int64(0), nil)

	output, err := srv.ListOwned(ctx, caller, &usecase.ListRestaurantsInput{})

	require.NoError(t, err)
	assert.Empty(t, output.Restaurants)
}

func TestRestaurantService_Delete_Cascades(t *testing.T) {
	srv, m := newRestaurantService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: caller.ID}

	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireRestaurantOwner(caller, restaurant).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	txMealRepo := mockRepo.NewMockMealRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txBlockedRepo := mockRepo.NewMockBlockedUserRepository(t)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	factory.EXPECT().MealRepo().Return(txMealRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().BlockedUserRepo().Return(txBlockedRepo)

	var steps []string
	txBlockedRepo.EXPECT().DeleteByRestaurant(ctx, restaurant.ID).
		Run(func(ctx context.Context, restaurantID uuid.UUID) { steps = append(steps, "blocklist") }).Return(nil)
	txMealRepo.EXPECT().DeleteByRestaurant(ctx, restaurant.ID).
		Run(func(ctx context.Context, restaurantID uuid.UUID) { steps = append(steps, "meals") }).Return(nil)
	txOrderRepo.EXPECT().DeleteByRestaurant(ctx, restaurant.ID).
		Run(func(ctx context.Context, restaurantID uuid.UUID) { steps = append(steps, "orders") }).Return(nil)
	txRestaurantRepo.EXPECT().Delete(ctx, restaurant.ID).
		Run(func(ctx context.Context, id uuid.UUID) { steps = append(steps, "restaurant") }).Return(nil)

	runInTx(m.txManager, ctx, factory)

	err := srv.Delete(ctx, caller, restaurant.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{"blocklist", "meals", "orders", "restaurant"}, steps)
}

func TestRestaurantService_ListCustomers_Success(t *testing.T) {
	srv, m := newRestaurantService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: caller.ID}
	customers := []*repository.RestaurantCustomer{
		{User: &entity.User{ID: uuid.New()}, Blocked: true},
		{User: &entity.User{ID: uuid.New()}, Blocked: false},
	}

	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireRestaurantOwner(caller, restaurant).Return(nil)
	m.userRepo.EXPECT().
		ListCustomersOfRestaurant(ctx, restaurant.ID, repository.Page{Page: 1, PerPage: defaultPerPage}).
		Return(customers, int64(2), nil)

	output, err := srv.ListCustomers(ctx, caller, restaurant.ID, &usecase.ListCustomersInput{})

	require.NoError(t, err)
	require.Len(t, output.Customers, 2)
	assert.True(t, output.Customers[0].Blocked)
	assert.False(t, output.Customers[1].Blocked)
}

func TestRestaurantService_BlockUser_Success(t *testing.T) {
	srv, m := newRestaurantService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: caller.ID}
	userID := uuid.New()

	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireRestaurantOwner(caller, restaurant).Return(nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	m.blockedRepo.EXPECT().Block(ctx, restaurant.ID, userID).Return(nil)

	err := srv.BlockUser(ctx, caller, restaurant.ID, userID)

	require.NoError(t, err)
}

func TestRestaurantService_BlockUser_UnknownTarget(t *testing.T) {
	srv, m := newRestaurantService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: caller.ID}
	userID := uuid.New()

	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireRestaurantOwner(caller, restaurant).Return(nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := srv.BlockUser(ctx, caller, restaurant.ID, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestRestaurantService_UnblockUser_Idempotent(t *testing.T) {
	srv, m := newRestaurantService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: caller.ID}
	userID := uuid.New()

	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireRestaurantOwner(caller, restaurant).Return(nil)
	// Unblocking a user who was never blocked is a silent no-op.
	m.blockedRepo.EXPECT().Unblock(ctx, restaurant.ID, userID).Return(nil)

	err := srv.UnblockUser(ctx, caller, restaurant.ID, userID)

	require.NoError(t, err)
}
