package impl

import (
	"context"
	"log/slog"

	deliverycontext "platter/internal/delivery/context"
	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/domain/service"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mealService implements the MealUsecase interface.
type mealService struct {
	mealRepo       repository.MealRepository
	restaurantRepo repository.RestaurantRepository
	guard          service.AccessGuard
	logger         *slog.Logger
}

// MealServiceParams holds dependencies for MealService, injected by Fx.
type MealServiceParams struct {
	fx.In

	MealRepo       repository.MealRepository
	RestaurantRepo repository.RestaurantRepository
	Guard          service.AccessGuard
	Logger         *slog.Logger
}

// NewMealService is the constructor for mealService.
func NewMealService(params MealServiceParams) usecase.MealUsecase {
	return &mealService{
		mealRepo:       params.MealRepo,
		restaurantRepo: params.RestaurantRepo,
		guard:          params.Guard,
		logger:         params.Logger,
	}
}

func (srv *mealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a meal to the menu of a restaurant the caller owns.
func (srv *mealService) Create(ctx context.Context, caller service.Caller, input *usecase.CreateMealInput) (*entity.Meal, error) {
	if _, err := srv.findOwnedRestaurant(ctx, caller, input.RestaurantID); err != nil {
		return nil, err
	}

	meal := &entity.Meal{
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
	}
	if err := srv.mealRepo.Create(ctx, meal); err != nil {
		return nil, errors.Wrap(err, "failed to create meal")
	}
	srv.log(ctx).Info("Meal created",
		slog.Any("mealID", meal.ID),
		slog.Any("restaurantID", meal.RestaurantID))

	return meal, nil
}

// Get returns one meal. Customer callers are rejected when the restaurant has
// blocked them.
func (srv *mealService) Get(ctx context.Context, caller service.Caller, id uuid.UUID) (*entity.Meal, error) {
	meal, err := srv.findMeal(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := srv.guard.CheckBlocklist(ctx, caller, meal.RestaurantID); err != nil {
		return nil, err
	}

	return meal, nil
}

// Update modifies a meal on a restaurant the caller owns. Nil fields are left
// untouched and the restaurant reference never changes.
func (srv *mealService) Update(ctx context.Context, caller service.Caller, id uuid.UUID, input *usecase.UpdateMealInput) (*entity.Meal, error) {
	meal, err := srv.findMeal(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := srv.findOwnedRestaurant(ctx, caller, meal.RestaurantID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		meal.Name = *input.Name
	}
	if input.Description != nil {
		meal.Description = *input.Description
	}
	if input.Price != nil {
		meal.Price = *input.Price
	}

	if err := srv.mealRepo.Update(ctx, meal); err != nil {
		return nil, errors.Wrap(err, "failed to update meal")
	}
	srv.log(ctx).Info("Meal updated", slog.Any("mealID", meal.ID))

	return meal, nil
}

// Delete removes a meal from a restaurant the caller owns. Existing orders
// keep their snapshot of the meal.
func (srv *mealService) Delete(ctx context.Context, caller service.Caller, id uuid.UUID) error {
	meal, err := srv.findMeal(ctx, id)
	if err != nil {
		return err
	}
	if _, err := srv.findOwnedRestaurant(ctx, caller, meal.RestaurantID); err != nil {
		return err
	}

	if err := srv.mealRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete meal")
	}
	srv.log(ctx).Info("Meal deleted", slog.Any("mealID", id))

	return nil
}

// List returns a page of meals. Scoping the listing to a restaurant is the
// one read the blocklist protects: a blocked customer cannot browse that
// restaurant's menu.
func (srv *mealService) List(ctx context.Context, caller service.Caller, input *usecase.ListMealsInput) (*usecase.MealListOutput, error) {
	if input.RestaurantID != uuid.Nil {
		if _, err := srv.findRestaurant(ctx, input.RestaurantID); err != nil {
			return nil, err
		}
		if err := srv.guard.CheckBlocklist(ctx, caller, input.RestaurantID); err != nil {
			return nil, err
		}
	}

	query := repository.ListMealsQuery{
		Page:         normalizePage(input.Page, input.PerPage),
		Search:       input.Search,
		RestaurantID: input.RestaurantID,
	}
	meals, total, err := srv.mealRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meals")
	}

	return &usecase.MealListOutput{
		Meals:      meals,
		Total:      total,
		Page:       query.Page.Page,
		TotalPages: totalPages(total, query.Page.PerPage),
	}, nil
}

func (srv *mealService) findMeal(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	meal, err := srv.mealRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMealNotFound, "meal not found")
		}

		return nil, errors.Wrap(err, "failed to load meal")
	}

	return meal, nil
}

func (srv *mealService) findRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to load restaurant")
	}

	return restaurant, nil
}

func (srv *mealService) findOwnedRestaurant(ctx context.Context, caller service.Caller, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.findRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := srv.guard.RequireRestaurantOwner(caller, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}
