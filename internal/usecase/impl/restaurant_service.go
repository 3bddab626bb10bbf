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

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	txManager      repository.TransactionManager
	restaurantRepo repository.RestaurantRepository
	userRepo       repository.UserRepository
	blockedRepo    repository.BlockedUserRepository
	guard          service.AccessGuard
	logger         *slog.Logger
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RestaurantRepo repository.RestaurantRepository
	UserRepo       repository.UserRepository
	BlockedRepo    repository.BlockedUserRepository
	Guard          service.AccessGuard
	Logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		txManager:      params.TxManager,
		restaurantRepo: params.RestaurantRepo,
		userRepo:       params.UserRepo,
		blockedRepo:    params.BlockedRepo,
		guard:          params.Guard,
		logger:         params.Logger,
	}
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes a restaurant under the calling owner's account.
func (srv *restaurantService) Create(ctx context.Context, caller service.Caller, input *usecase.CreateRestaurantInput) (*entity.Restaurant, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleOwner); err != nil {
		return nil, err
	}

	restaurant := &entity.Restaurant{
		OwnerID:     caller.ID,
		Name:        input.Name,
		Description: input.Description,
		FoodType:    input.FoodType,
	}
	if err := srv.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, errors.Wrap(err, "failed to create restaurant")
	}
	srv.log(ctx).Info("Restaurant created", slog.Any("restaurantID", restaurant.ID))

	return restaurant, nil
}

// Get returns one restaurant. Both customers and owners may look up any
// restaurant; existence is reported before any ownership consideration.
func (srv *restaurantService) Get(ctx context.Context, caller service.Caller, id uuid.UUID) (*entity.Restaurant, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleUser, entity.RoleOwner); err != nil {
		return nil, err
	}

	return srv.findRestaurant(ctx, id)
}

// Update modifies the restaurant profile. Owner of the restaurant only.
func (srv *restaurantService) Update(ctx context.Context, caller service.Caller, id uuid.UUID, input *usecase.UpdateRestaurantInput) (*entity.Restaurant, error) {
	restaurant, err := srv.findOwnedRestaurant(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.Description != nil {
		restaurant.Description = *input.Description
	}
	if input.FoodType != nil {
		restaurant.FoodType = *input.FoodType
	}

	if err := srv.restaurantRepo.Update(ctx, restaurant); err != nil {
		return nil, errors.Wrap(err, "failed to update restaurant")
	}
	srv.log(ctx).Info("Restaurant updated", slog.Any("restaurantID", restaurant.ID))

	return restaurant, nil
}

// List returns the public restaurant directory. Customer role only; owners
// browse their own restaurants through ListOwned.
func (srv *restaurantService) List(ctx context.Context, caller service.Caller, input *usecase.ListRestaurantsInput) (*usecase.RestaurantListOutput, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleUser); err != nil {
		return nil, err
	}

	query := repository.ListRestaurantsQuery{
		Page:   normalizePage(input.Page, input.PerPage),
		Search: input.Search,
	}

	return srv.list(ctx, query)
}

// ListOwned returns the calling owner's restaurants.
func (srv *restaurantService) ListOwned(ctx context.Context, caller service.Caller, input *usecase.ListRestaurantsInput) (*usecase.RestaurantListOutput, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleOwner); err != nil {
		return nil, err
	}

	query := repository.ListRestaurantsQuery{
		Page:    normalizePage(input.Page, input.PerPage),
		Search:  input.Search,
		OwnerID: caller.ID,
	}

	return srv.list(ctx, query)
}

func (srv *restaurantService) list(ctx context.Context, query repository.ListRestaurantsQuery) (*usecase.RestaurantListOutput, error) {
	restaurants, total, err := srv.restaurantRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return &usecase.RestaurantListOutput{
		Restaurants: restaurants,
		Total:       total,
		Page:        query.Page.Page,
		TotalPages:  totalPages(total, query.Page.PerPage),
	}, nil
}

// Delete removes the restaurant and everything scoped to it. The blocklist
// entries, meals and orders go first so no row is left pointing at a missing
// restaurant; all steps commit or roll back together.
func (srv *restaurantService) Delete(ctx context.Context, caller service.Caller, id uuid.UUID) error {
	if _, err := srv.findOwnedRestaurant(ctx, caller, id); err != nil {
		return err
	}

	txErr := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return deleteRestaurantCascade(ctx, f, id)
	})
	if txErr != nil {
		return errors.Wrap(txErr, "failed to delete restaurant")
	}
	srv.log(ctx).Info("Restaurant deleted", slog.Any("restaurantID", id))

	return nil
}

// deleteRestaurantCascade removes a restaurant and its dependents inside the
// caller's transaction. Shared with the account cascade, which walks every
// restaurant an owner has.
func deleteRestaurantCascade(ctx context.Context, f repository.RepositoryFactory, restaurantID uuid.UUID) error {
	if err := f.BlockedUserRepo().DeleteByRestaurant(ctx, restaurantID); err != nil {
		return errors.Wrap(err, "failed to delete blocklist entries")
	}
	if err := f.MealRepo().DeleteByRestaurant(ctx, restaurantID); err != nil {
		return errors.Wrap(err, "failed to delete meals")
	}
	if err := f.OrderRepo().DeleteByRestaurant(ctx, restaurantID); err != nil {
		return errors.Wrap(err, "failed to delete orders")
	}
	if err := f.RestaurantRepo().Delete(ctx, restaurantID); err != nil {
		return errors.Wrap(err, "failed to delete restaurant row")
	}

	return nil
}

// ListCustomers returns the users who have ordered from the restaurant,
// flagged with their blocklist state. Owner of the restaurant only.
func (srv *restaurantService) ListCustomers(ctx context.Context, caller service.Caller, restaurantID uuid.UUID, input *usecase.ListCustomersInput) (*usecase.CustomerListOutput, error) {
	if _, err := srv.findOwnedRestaurant(ctx, caller, restaurantID); err != nil {
		return nil, err
	}

	page := normalizePage(input.Page, input.PerPage)
	customers, total, err := srv.userRepo.ListCustomersOfRestaurant(ctx, restaurantID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurant customers")
	}

	return &usecase.CustomerListOutput{
		Customers:  customers,
		Total:      total,
		Page:       page.Page,
		TotalPages: totalPages(total, page.PerPage),
	}, nil
}

// BlockUser adds a customer to the restaurant's ordering denylist. Blocking
// an already blocked user changes nothing.
func (srv *restaurantService) BlockUser(ctx context.Context, caller service.Caller, restaurantID, userID uuid.UUID) error {
	if _, err := srv.findOwnedRestaurant(ctx, caller, restaurantID); err != nil {
		return err
	}
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "cannot block unknown user")
		}

		return errors.Wrap(err, "failed to load user to block")
	}

	if err := srv.blockedRepo.Block(ctx, restaurantID, userID); err != nil {
		return errors.Wrap(err, "failed to block user")
	}
	srv.log(ctx).Info("User blocked",
		slog.Any("restaurantID", restaurantID),
		slog.Any("userID", userID))

	return nil
}

// UnblockUser removes a customer from the denylist. A no-op when the user was
// not blocked.
func (srv *restaurantService) UnblockUser(ctx context.Context, caller service.Caller, restaurantID, userID uuid.UUID) error {
	if _, err := srv.findOwnedRestaurant(ctx, caller, restaurantID); err != nil {
		return err
	}

	if err := srv.blockedRepo.Unblock(ctx, restaurantID, userID); err != nil {
		return errors.Wrap(err, "failed to unblock user")
	}
	srv.log(ctx).Info("User unblocked",
		slog.Any("restaurantID", restaurantID),
		slog.Any("userID", userID))

	return nil
}

// findRestaurant resolves an id to a restaurant, mapping a missing row to the
// typed not-found error.
func (srv *restaurantService) findRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to load restaurant")
	}

	return restaurant, nil
}

// findOwnedRestaurant resolves the restaurant and verifies the caller owns
// it. Existence is checked first, so a non-owner probing a missing id gets
// not-found rather than forbidden.
func (srv *restaurantService) findOwnedRestaurant(ctx context.Context, caller service.Caller, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.findRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := srv.guard.RequireRestaurantOwner(caller, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}
