package impl

import (
	"context"
	"log/slog"
	"time"

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

// orderService implements the OrderUsecase interface. Status transitions run
// inside a transaction with the order row locked, so two concurrent attempts
// on the same order are applied one after the other and the loser is judged
// against the winner's resulting status.
type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	restaurantRepo repository.RestaurantRepository
	mealRepo       repository.MealRepository
	guard          service.AccessGuard
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	RestaurantRepo repository.RestaurantRepository
	MealRepo       repository.MealRepository
	Guard          service.AccessGuard
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		restaurantRepo: params.RestaurantRepo,
		mealRepo:       params.MealRepo,
		guard:          params.Guard,
		logger:         params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Place creates an order for the calling customer. Each referenced meal must
// exist and belong to the target restaurant; the order stores a snapshot of
// the meal name and price so later menu edits never rewrite history.
func (srv *orderService) Place(ctx context.Context, caller service.Caller, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleUser); err != nil {
		return nil, err
	}
	if len(input.Lines) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("order must contain at least one meal"), "empty order")
	}

	var order *entity.Order
	txErr := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.RestaurantRepo().FindByID(ctx, input.RestaurantID); err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found for order")
			}

			return errors.Wrap(err, "failed to load restaurant for order")
		}

		now := time.Now()
		order = &entity.Order{
			UserID:       caller.ID,
			RestaurantID: input.RestaurantID,
			Status:       entity.StatusPlaced,
			Track:        []entity.TrackEntry{{Status: entity.StatusPlaced, Time: now}},
		}

		for _, line := range input.Lines {
			meal, err := f.MealRepo().FindByID(ctx, line.MealID)
			if err != nil {
				if errors.Is(err, repository.ErrMealNotFound) {
					return errors.Wrap(
						domainerrors.ErrValidationFailed.WithDetails("meal "+line.MealID.String()+" does not exist"),
						"unknown meal in order")
				}

				return errors.Wrap(err, "failed to load meal for order")
			}
			if meal.RestaurantID != input.RestaurantID {
				return errors.Wrap(
					domainerrors.ErrValidationFailed.WithDetails("meal "+line.MealID.String()+" does not belong to the restaurant"),
					"meal from another restaurant")
			}

			count := line.Count
			if count < 1 {
				count = 1
			}

			order.Lines = append(order.Lines, entity.OrderLine{
				MealID: meal.ID,
				Name:   meal.Name,
				Price:  meal.Price,
				Count:  count,
			})
			order.Total += meal.Price * float64(count)
		}

		if err := f.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("restaurantID", order.RestaurantID),
		slog.Float64("total", order.Total))

	return order, nil
}

// Get returns one order to its placer or the owner of its restaurant.
func (srv *orderService) Get(ctx context.Context, caller service.Caller, id uuid.UUID) (*entity.Order, error) {
	order, restaurant, err := srv.loadOrderWithRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := srv.guard.RequireOrderActor(caller, order, restaurant); err != nil {
		return nil, err
	}

	return order, nil
}

// List returns the caller's slice of the order book, newest first. Customers
// see the orders they placed; owners see the orders of their restaurants.
func (srv *orderService) List(ctx context.Context, caller service.Caller, input *usecase.ListOrdersInput) (*usecase.OrderListOutput, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleUser, entity.RoleOwner); err != nil {
		return nil, err
	}

	query := repository.ListOrdersQuery{
		Page:   normalizePage(input.Page, input.PerPage),
		Status: input.Status,
	}

	switch caller.Role {
	case entity.RoleUser:
		query.UserID = caller.ID
	case entity.RoleOwner:
		ids, err := srv.restaurantRepo.ListIDsByOwner(ctx, caller.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve owned restaurants")
		}
		if len(ids) == 0 {
			return &usecase.OrderListOutput{Orders: []*entity.Order{}, Page: query.Page.Page}, nil
		}
		query.RestaurantIDs = ids
	}

	orders, total, err := srv.orderRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderListOutput{
		Orders:     orders,
		Total:      total,
		Page:       query.Page.Page,
		TotalPages: totalPages(total, query.Page.PerPage),
	}, nil
}

// UpdateStatus applies one transition of the order state machine on behalf of
// the caller. The order is locked for the duration of the transaction, so the
// legality check and the track append act on a stable status.
func (srv *orderService) UpdateStatus(ctx context.Context, caller service.Caller, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidTransition, "unknown target status")
	}

	var order *entity.Order
	txErr := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		var err error
		order, err = f.OrderRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found for status update")
			}

			return errors.Wrap(err, "failed to lock order for status update")
		}

		restaurant, err := f.RestaurantRepo().FindByID(ctx, order.RestaurantID)
		if err != nil {
			return errors.Wrap(err, "failed to load restaurant for status update")
		}

		if err := srv.guard.RequireOrderActor(caller, order, restaurant); err != nil {
			return err
		}

		if !entity.CanTransition(caller.Role, order.Status, status) {
			return errors.Wrapf(
				domainerrors.ErrInvalidTransition.WithDetails(
					"cannot move from "+order.Status.String()+" to "+status.String()),
				"transition rejected for role %s", caller.Role)
		}

		now := time.Now()
		if err := f.OrderRepo().AppendTransition(ctx, order.ID, status, now); err != nil {
			return errors.Wrap(err, "failed to record status transition")
		}

		order.Status = status
		order.Track = append(order.Track, entity.TrackEntry{Status: status, Time: now})
		order.UpdatedAt = now

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", order.ID),
		slog.String("status", order.Status.String()))

	return order, nil
}

// Delete removes an order. Only the customer who placed it may delete it.
func (srv *orderService) Delete(ctx context.Context, caller service.Caller, id uuid.UUID) error {
	order, _, err := srv.loadOrderWithRestaurant(ctx, id)
	if err != nil {
		return err
	}
	if caller.Role != entity.RoleUser || !order.IsPlacedBy(caller.ID) {
		return errors.Wrap(domainerrors.ErrForbidden, "only the placer may delete an order")
	}

	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}
	srv.log(ctx).Info("Order deleted", slog.Any("orderID", id))

	return nil
}

// loadOrderWithRestaurant resolves the order and its restaurant, mapping
// missing rows to the typed not-found errors.
func (srv *orderService) loadOrderWithRestaurant(ctx context.Context, id uuid.UUID) (*entity.Order, *entity.Restaurant, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, nil, errors.Wrap(err, "failed to load order")
	}

	restaurant, err := srv.restaurantRepo.FindByID(ctx, order.RestaurantID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load the order's restaurant")
	}

	return order, restaurant, nil
}
