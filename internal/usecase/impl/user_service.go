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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	guard     service.AccessGuard
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Guard     service.AccessGuard
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		guard:     params.Guard,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns any account by id. Administrator only.
func (srv *userService) Get(ctx context.Context, caller service.Caller, id uuid.UUID) (*entity.User, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}

	return srv.findUser(ctx, id)
}

// GetSelf returns the caller's own account.
func (srv *userService) GetSelf(ctx context.Context, caller service.Caller) (*entity.User, error) {
	return srv.findUser(ctx, caller.ID)
}

// List returns a page of accounts. Administrator only.
func (srv *userService) List(ctx context.Context, caller service.Caller, input *usecase.ListUsersInput) (*usecase.UserListOutput, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}

	query := repository.ListUsersQuery{
		Page:   normalizePage(input.Page, input.PerPage),
		Search: input.Search,
		Role:   input.Role,
	}
	users, total, err := srv.userRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserListOutput{
		Users:      users,
		Total:      total,
		Page:       query.Page.Page,
		TotalPages: totalPages(total, query.Page.PerPage),
	}, nil
}

// Create provisions an account with any role. Administrator only.
func (srv *userService) Create(ctx context.Context, caller service.Caller, input *usecase.CreateUserInput) (*entity.User, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if !input.Role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unknown role "+string(input.Role)), "invalid role")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	user := &entity.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	}
	if err := srv.userRepo.Create(ctx, user, hashedPassword); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	srv.log(ctx).Info("User created",
		slog.Any("userID", user.ID),
		slog.String("role", user.Role.String()))

	return user, nil
}

// Update modifies any account, including its role. Administrator only.
func (srv *userService) Update(ctx context.Context, caller service.Caller, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}

	return srv.applyUpdate(ctx, id, input, true)
}

// UpdateSelf modifies the caller's own account. A role change in the input is
// dropped without error unless the caller is an administrator.
func (srv *userService) UpdateSelf(ctx context.Context, caller service.Caller, input *usecase.UpdateUserInput) (*entity.User, error) {
	return srv.applyUpdate(ctx, caller.ID, input, caller.Role == entity.RoleAdmin)
}

func (srv *userService) applyUpdate(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput, allowRoleChange bool) (*entity.User, error) {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil && allowRoleChange {
		if !input.Role.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unknown role "+string(*input.Role)), "invalid role")
		}
		user.Role = *input.Role
	}

	var hashedPassword string
	if input.Password != nil {
		hashedPassword, err = srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
		}
	}

	if err := srv.userRepo.Update(ctx, user, hashedPassword); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}
	srv.log(ctx).Info("User updated", slog.Any("userID", user.ID))

	return user, nil
}

// Delete removes an account and everything reachable from it in one
// transaction: blocklist rows naming the user, every owned restaurant with
// its own dependents, the orders the user placed, the stored sessions, and
// finally the account row. Administrator only.
func (srv *userService) Delete(ctx context.Context, caller service.Caller, id uuid.UUID) error {
	if err := srv.guard.RequireRole(caller, entity.RoleAdmin); err != nil {
		return err
	}
	if _, err := srv.findUser(ctx, id); err != nil {
		return err
	}

	txErr := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.BlockedUserRepo().DeleteByUser(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete blocklist entries naming the user")
		}

		ownedIDs, err := f.RestaurantRepo().ListIDsByOwner(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to resolve owned restaurants")
		}
		for _, restaurantID := range ownedIDs {
			if err := deleteRestaurantCascade(ctx, f, restaurantID); err != nil {
				return err
			}
		}

		if err := f.OrderRepo().DeleteByUser(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete the user's orders")
		}
		if err := f.RefreshTokenRepo().DeleteByUser(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete the user's sessions")
		}
		if err := f.UserRepo().Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete user row")
		}

		return nil
	})
	if txErr != nil {
		return errors.Wrap(txErr, "failed to delete user")
	}
	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

func (srv *userService) findUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}
