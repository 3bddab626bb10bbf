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

type orderServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	orderRepo      *mockRepo.MockOrderRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
	mealRepo       *mockRepo.MockMealRepository
	guard          *mockService.MockAccessGuard
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	m := &orderServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		mealRepo:       mockRepo.NewMockMealRepository(t),
		guard:          mockService.NewMockAccessGuard(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewOrderService(OrderServiceParams{
		TxManager:      m.txManager,
		OrderRepo:      m.orderRepo,
		RestaurantRepo: m.restaurantRepo,
		MealRepo:       m.mealRepo,
		Guard:          m.guard,
		Logger:         logger,
	})

	return srv, m
}

// runInTx routes TransactionManager.Execute through the given factory so the
// transactional body runs against the test's repository mocks.
func runInTx(txManager *mockRepo.MockTransactionManager, ctx context.Context, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func appErrorCode(t *testing.T, err error) string {
	t.Helper()
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)

	return appErr.ErrorCode()
}

func TestOrderService_Place_Success(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	restaurantID := uuid.New()
	burger := &entity.Meal{ID: uuid.New(), RestaurantID: restaurantID, Name: "Burger", Price: 9.5}
	fries := &entity.Meal{ID: uuid.New(), RestaurantID: restaurantID, Name: "Fries", Price: 3.0}

	m.guard.EXPECT().RequireRole(caller, entity.RoleUser).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	txMealRepo := mockRepo.NewMockMealRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	factory.EXPECT().MealRepo().Return(txMealRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)

	txRestaurantRepo.EXPECT().FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New()}, nil)
	txMealRepo.EXPECT().FindByID(ctx, burger.ID).Return(burger, nil)
	txMealRepo.EXPECT().FindByID(ctx, fries.ID).Return(fries, nil)
	txOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	runInTx(m.txManager, ctx, factory)

	order, err := srv.Place(ctx, caller, &usecase.PlaceOrderInput{
		RestaurantID: restaurantID,
		Lines: []usecase.OrderLineInput{
			{MealID: burger.ID, Count: 2},
			{MealID: fries.ID, Count: 0}, // coerced to 1
		},
	})

	require.NoError(t, err)
	assert.Equal(t, caller.ID, order.UserID)
	assert.Equal(t, entity.StatusPlaced, order.Status)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, "Burger", order.Lines[0].Name)
	assert.Equal(t, 2, order.Lines[0].Count)
	assert.Equal(t, 1, order.Lines[1].Count)
	assert.InDelta(t, 22.0, order.Total, 0.001)
	require.Len(t, order.Track, 1)
	assert.Equal(t, entity.StatusPlaced, order.Track[0].Status)
}

func TestOrderService_Place_EmptyOrder(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}

	m.guard.EXPECT().RequireRole(caller, entity.RoleUser).Return(nil)

	_, err := srv.Place(ctx, caller, &usecase.PlaceOrderInput{RestaurantID: uuid.New()})

	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestOrderService_Place_MealFromAnotherRestaurant(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	restaurantID := uuid.New()
	foreignMeal := &entity.Meal{ID: uuid.New(), RestaurantID: uuid.New(), Name: "Sushi", Price: 12}

	m.guard.EXPECT().RequireRole(caller, entity.RoleUser).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	txMealRepo := mockRepo.NewMockMealRepository(t)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	factory.EXPECT().MealRepo().Return(txMealRepo)

	txRestaurantRepo.EXPECT().FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID}, nil)
	txMealRepo.EXPECT().FindByID(ctx, foreignMeal.ID).Return(foreignMeal, nil)

	runInTx(m.txManager, ctx, factory)

	_, err := srv.Place(ctx, caller, &usecase.PlaceOrderInput{
		RestaurantID: restaurantID,
		Lines:        []usecase.OrderLineInput{{MealID: foreignMeal.ID, Count: 1}},
	})

	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestOrderService_Place_UnknownMeal(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	restaurantID := uuid.New()
	mealID := uuid.New()

	m.guard.EXPECT().RequireRole(caller, entity.RoleUser).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	txMealRepo := mockRepo.NewMockMealRepository(t)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	factory.EXPECT().MealRepo().Return(txMealRepo)

	txRestaurantRepo.EXPECT().FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID}, nil)
	txMealRepo.EXPECT().FindByID(ctx, mealID).Return(nil, repository.ErrMealNotFound)

	runInTx(m.txManager, ctx, factory)

	_, err := srv.Place(ctx, caller, &usecase.PlaceOrderInput{
		RestaurantID: restaurantID,
		Lines:        []usecase.OrderLineInput{{MealID: mealID, Count: 1}},
	})

	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestOrderService_Place_NotCustomer(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}

	m.guard.EXPECT().RequireRole(caller, entity.RoleUser).Return(domainerrors.ErrForbidden)

	_, err := srv.Place(ctx, caller, &usecase.PlaceOrderInput{
		RestaurantID: uuid.New(),
		Lines:        []usecase.OrderLineInput{{MealID: uuid.New(), Count: 1}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateStatus_OwnerAccepts(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	caller := service.Caller{ID: ownerID, Role: entity.RoleOwner}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: ownerID}
	order := &entity.Order{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		RestaurantID: restaurant.ID,
		Status:       entity.StatusPlaced,
		Track:        []entity.TrackEntry{{Status: entity.StatusPlaced}},
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)

	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireOrderActor(caller, order, restaurant).Return(nil)
	txOrderRepo.EXPECT().
		AppendTransition(ctx, order.ID, entity.StatusProcessing, mock.AnythingOfType("time.Time")).
		Return(nil)

	runInTx(m.txManager, ctx, factory)

	updated, err := srv.UpdateStatus(ctx, caller, order.ID, entity.StatusProcessing)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusProcessing, updated.Status)
	require.Len(t, updated.Track, 2)
	assert.Equal(t, entity.StatusProcessing, updated.Track[1].Status)
}

func TestOrderService_UpdateStatus_CustomerCancels(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	caller := service.Caller{ID: userID, Role: entity.RoleUser}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: uuid.New()}
	order := &entity.Order{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: restaurant.ID,
		Status:       entity.StatusPlaced,
		Track:        []entity.TrackEntry{{Status: entity.StatusPlaced}},
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)

	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireOrderActor(caller, order, restaurant).Return(nil)
	txOrderRepo.EXPECT().
		AppendTransition(ctx, order.ID, entity.StatusCanceled, mock.AnythingOfType("time.Time")).
		Return(nil)

	runInTx(m.txManager, ctx, factory)

	updated, err := srv.UpdateStatus(ctx, caller, order.ID, entity.StatusCanceled)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCanceled, updated.Status)
}

func TestOrderService_UpdateStatus_SkippingStepsRejected(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	caller := service.Caller{ID: ownerID, Role: entity.RoleOwner}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: ownerID}
	order := &entity.Order{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		RestaurantID: restaurant.ID,
		Status:       entity.StatusPlaced,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)

	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireOrderActor(caller, order, restaurant).Return(nil)

	runInTx(m.txManager, ctx, factory)

	_, err := srv.UpdateStatus(ctx, caller, order.ID, entity.StatusDelivered)

	assert.Equal(t, "INVALID_STATUS", appErrorCode(t, err))
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	srv, _ := newOrderService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}

	_, err := srv.UpdateStatus(ctx, caller, uuid.New(), entity.OrderStatus(42))

	assert.Equal(t, "INVALID_STATUS", appErrorCode(t, err))
}

func TestOrderService_UpdateStatus_OrderNotFound(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}
	orderID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	runInTx(m.txManager, ctx, factory)

	_, err := srv.UpdateStatus(ctx, caller, orderID, entity.StatusProcessing)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_Get_UnrelatedCallerRejected(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: uuid.New()}
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), RestaurantID: restaurant.ID}

	m.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireOrderActor(caller, order, restaurant).Return(domainerrors.ErrForbidden)

	_, err := srv.Get(ctx, caller, order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_List_CustomerSeesOwnOrders(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	orders := []*entity.Order{{ID: uuid.New(), UserID: caller.ID}}

	m.guard.EXPECT().RequireRole(caller, entity.RoleUser, entity.RoleOwner).Return(nil)
	m.orderRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(q repository.ListOrdersQuery) bool {
			return q.UserID == caller.ID && len(q.RestaurantIDs) == 0
		})).
		Return(orders, int64(1), nil)

	output, err := srv.List(ctx, caller, &usecase.ListOrdersInput{})

	require.NoError(t, err)
	assert.Len(t, output.Orders, 1)
	assert.Equal(t, int64(1), output.Total)
	assert.Equal(t, 1, output.TotalPages)
}

func TestOrderService_List_OwnerWithoutRestaurants(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}

	m.guard.EXPECT().RequireRole(caller, entity.RoleUser, entity.RoleOwner).Return(nil)
	m.restaurantRepo.EXPECT().ListIDsByOwner(ctx, caller.ID).Return([]uuid.UUID{}, nil)

	output, err := srv.List(ctx, caller, &usecase.ListOrdersInput{})

	require.NoError(t, err)
	assert.Empty(t, output.Orders)
	assert.Equal(t, int64(0), output.Total)
}

func TestOrderService_Delete_OnlyPlacer(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	caller := service.Caller{ID: ownerID, Role: entity.RoleOwner}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: ownerID}
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), RestaurantID: restaurant.ID}

	m.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)

	err := srv.Delete(ctx, caller, order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_Delete_ByPlacer(t *testing.T) {
	srv, m := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	caller := service.Caller{ID: userID, Role: entity.RoleUser}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: uuid.New()}
	order := &entity.Order{ID: uuid.New(), UserID: userID, RestaurantID: restaurant.ID}

	m.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.orderRepo.EXPECT().Delete(ctx, order.ID).Return(nil)

	err := srv.Delete(ctx, caller, order.ID)

	require.NoError(t, err)
}
