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

type mealServiceMocks struct {
	mealRepo       *mockRepo.MockMealRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
	guard          *mockService.MockAccessGuard
}

func newMealService(t *testing.T) (usecase.MealUsecase, *mealServiceMocks) {
	m := &mealServiceMocks{
		mealRepo:       mockRepo.NewMockMealRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		guard:          mockService.NewMockAccessGuard(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewMealService(MealServiceParams{
		MealRepo:       m.mealRepo,
		RestaurantRepo: m.restaurantRepo,
		Guard:          m.guard,
		Logger:         logger,
	})

	return srv, m
}

func TestMealService_Create_Success(t *testing.T) {
	srv, m := newMealService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: caller.ID}

	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireRestaurantOwner(caller, restaurant).Return(nil)
	m.mealRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Meal")).Return(nil)

	meal, err := srv.Create(ctx, caller, &usecase.CreateMealInput{
		RestaurantID: restaurant.ID,
		Name:         "Pad Thai",
		Price:        11.5,
	})

	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, meal.RestaurantID)
	assert.Equal(t, "Pad Thai", meal.Name)
}

func TestMealService_Create_ForeignRestaurantRejected(t *testing.T) {
	srv, m := newMealService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: uuid.New()}

	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireRestaurantOwner(caller, restaurant).Return(domainerrors.ErrForbidden)

	_, err := srv.Create(ctx, caller, &usecase.CreateMealInput{
		RestaurantID: restaurant.ID,
		Name:         "Pad Thai",
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestMealService_Get_BlockedCustomerRejected(t *testing.T) {
	srv, m := newMealService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	meal := &entity.Meal{ID: uuid.New(), RestaurantID: uuid.New(), Name: "Ramen"}

	m.mealRepo.EXPECT().FindByID(ctx, meal.ID).Return(meal, nil)
	m.guard.EXPECT().CheckBlocklist(ctx, caller, meal.RestaurantID).
		Return(domainerrors.ErrBlockedByRestaurant)

	_, err := srv.Get(ctx, caller, meal.ID)

	assert.ErrorIs(t, err, domainerrors.ErrBlockedByRestaurant)
}

func TestMealService_Get_Success(t *testing.T) {
	srv, m := newMealService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	meal := &entity.Meal{ID: uuid.New(), RestaurantID: uuid.New(), Name: "Ramen"}

	m.mealRepo.EXPECT().FindByID(ctx, meal.ID).Return(meal, nil)
	m.guard.EXPECT().CheckBlocklist(ctx, caller, meal.RestaurantID).Return(nil)

	got, err := srv.Get(ctx, caller, meal.ID)

	require.NoError(t, err)
	assert.Equal(t, meal, got)
}

func TestMealService_List_BlockedCustomerCannotBrowseMenu(t *testing.T) {
	srv, m := newMealService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: uuid.New()}

	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().CheckBlocklist(ctx, caller, restaurant.ID).
		Return(domainerrors.ErrBlockedByRestaurant)

	_, err := srv.List(ctx, caller, &usecase.ListMealsInput{RestaurantID: restaurant.ID})

	assert.ErrorIs(t, err, domainerrors.ErrBlockedByRestaurant)
}

func TestMealService_List_MissingRestaurantBeforeBlocklist(t *testing.T) {
	srv, m := newMealService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	restaurantID := uuid.New()

	m.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(nil, repository.ErrRestaurantNotFound)

	_, err := srv.List(ctx, caller, &usecase.ListMealsInput{RestaurantID: restaurantID})

	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
	m.guard.AssertNotCalled(t, "CheckBlocklist", mock.Anything, mock.Anything, mock.Anything)
}

func TestMealService_List_UnscopedSkipsBlocklist(t *testing.T) {
	srv, m := newMealService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	meals := []*entity.Meal{{ID: uuid.New()}}

	// Without a restaurant filter there is no blocklist scope to enforce.
	m.mealRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(q repository.ListMealsQuery) bool {
			return q.RestaurantID == uuid.Nil
		})).
		Return(meals, int64(1), nil)

	output, err := srv.List(ctx, caller, &usecase.ListMealsInput{})

	require.NoError(t, err)
	assert.Len(t, output.Meals, 1)
}

func TestMealService_Update_Success(t *testing.T) {
	srv, m := newMealService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: caller.ID}
	meal := &entity.Meal{ID: uuid.New(), RestaurantID: restaurant.ID, Name: "Ramen", Price: 10}

	m.mealRepo.EXPECT().FindByID(ctx, meal.ID).Return(meal, nil)
	m.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	m.guard.EXPECT().RequireRestaurantOwner(caller, restaurant).Return(nil)
	m.mealRepo.EXPECT().Update(ctx, meal).Return(nil)

	newPrice := 12.5
	updated, err := srv.Update(ctx, caller, meal.ID, &usecase.UpdateMealInput{Price: &newPrice})

	require.NoError(t, err)
	assert.InDelta(t, 12.5, updated.Price, 0.001)
	assert.Equal(t, "Ramen", updated.Name)
}

func TestMealService_Delete_UnknownMeal(t *testing.T) {
	srv, m := newMealService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}
	id := uuid.New()

	m.mealRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrMealNotFound)

	err := srv.Delete(ctx, caller, id)

	assert.ErrorIs(t, err, domainerrors.ErrMealNotFound)
}
