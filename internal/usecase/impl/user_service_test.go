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

type userServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockService.MockPasswordHasher
	guard     *mockService.MockAccessGuard
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	m := &userServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockService.NewMockPasswordHasher(t),
		guard:     mockService.NewMockAccessGuard(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewUserService(UserServiceParams{
		TxManager: m.txManager,
		UserRepo:  m.userRepo,
		Hasher:    m.hasher,
		Guard:     m.guard,
		Logger:    logger,
	})

	return srv, m
}

func TestUserService_Create_Success(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	admin := service.Caller{ID: uuid.New(), Role: entity.RoleAdmin}

	m.guard.EXPECT().RequireRole(admin, entity.RoleAdmin).Return(nil)
	m.hasher.EXPECT().Hash("supersecret").Return("hashed-password", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), "hashed-password").
		Return(nil)

	user, err := srv.Create(ctx, admin, &usecase.CreateUserInput{
		Name:     "New Owner",
		Email:    "owner@example.com",
		Password: "supersecret",
		Role:     entity.RoleOwner,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, user.Role)
	assert.Equal(t, "owner@example.com", user.Email)
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	admin := service.Caller{ID: uuid.New(), Role: entity.RoleAdmin}

	m.guard.EXPECT().RequireRole(admin, entity.RoleAdmin).Return(nil)

	_, err := srv.Create(ctx, admin, &usecase.CreateUserInput{
		Name:     "Nobody",
		Email:    "nobody@example.com",
		Password: "supersecret",
		Role:     entity.Role("superuser"),
	})

	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestUserService_Create_NonAdminRejected(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleOwner}

	m.guard.EXPECT().RequireRole(caller, entity.RoleAdmin).Return(domainerrors.ErrForbidden)

	_, err := srv.Create(ctx, caller, &usecase.CreateUserInput{
		Name:     "Sneaky",
		Email:    "sneaky@example.com",
		Password: "supersecret",
		Role:     entity.RoleAdmin,
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_UpdateSelf_RoleChangeDropped(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	stored := &entity.User{ID: caller.ID, Name: "Customer", Email: "c@example.com", Role: entity.RoleUser}

	m.userRepo.EXPECT().FindByID(ctx, caller.ID).Return(stored, nil)

	var saved *entity.User
	m.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User"), "").
		Run(func(ctx context.Context, user *entity.User, passwordHash string) {
			saved = user
		}).
		Return(nil)

	newName := "Renamed Customer"
	escalation := entity.RoleAdmin
	user, err := srv.UpdateSelf(ctx, caller, &usecase.UpdateUserInput{
		Name: &newName,
		Role: &escalation,
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed Customer", user.Name)
	// The role change is silently ignored for non-admin callers.
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, entity.RoleUser, saved.Role)
}

func TestUserService_Update_AdminMayChangeRole(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	admin := service.Caller{ID: uuid.New(), Role: entity.RoleAdmin}
	target := &entity.User{ID: uuid.New(), Name: "Customer", Role: entity.RoleUser}

	m.guard.EXPECT().RequireRole(admin, entity.RoleAdmin).Return(nil)
	m.userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	m.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User"), "").Return(nil)

	promotion := entity.RoleOwner
	user, err := srv.Update(ctx, admin, target.ID, &usecase.UpdateUserInput{Role: &promotion})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, user.Role)
}

func TestUserService_UpdateSelf_PasswordRehashed(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	caller := service.Caller{ID: uuid.New(), Role: entity.RoleUser}
	stored := &entity.User{ID: caller.ID, Role: entity.RoleUser}

	m.userRepo.EXPECT().FindByID(ctx, caller.ID).Return(stored, nil)
	m.hasher.EXPECT().Hash("newpassword").Return("new-hash", nil)
	m.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User"), "new-hash").Return(nil)

	newPassword := "newpassword"
	_, err := srv.UpdateSelf(ctx, caller, &usecase.UpdateUserInput{Password: &newPassword})

	require.NoError(t, err)
}

func TestUserService_Get_NotFound(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	admin := service.Caller{ID: uuid.New(), Role: entity.RoleAdmin}
	id := uuid.New()

	m.guard.EXPECT().RequireRole(admin, entity.RoleAdmin).Return(nil)
	m.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := srv.Get(ctx, admin, id)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_List_Success(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	admin := service.Caller{ID: uuid.New(), Role: entity.RoleAdmin}
	users := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}

	m.guard.EXPECT().RequireRole(admin, entity.RoleAdmin).Return(nil)
	m.userRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(q repository.ListUsersQuery) bool {
			return q.Page.Page == 1 && q.Role == entity.RoleUser
		})).
		Return(users, int64(41), nil)

	output, err := srv.List(ctx, admin, &usecase.ListUsersInput{Role: entity.RoleUser})

	require.NoError(t, err)
	assert.Len(t, output.Users, 2)
	assert.Equal(t, int64(41), output.Total)
	assert.Equal(t, 3, output.TotalPages)
}

func TestUserService_Delete_CascadesOverOwnedRestaurants(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	admin := service.Caller{ID: uuid.New(), Role: entity.RoleAdmin}
	target := &entity.User{ID: uuid.New(), Role: entity.RoleOwner}
	restaurantID := uuid.New()

	m.guard.EXPECT().RequireRole(admin, entity.RoleAdmin).Return(nil)
	m.userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	txMealRepo := mockRepo.NewMockMealRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txBlockedRepo := mockRepo.NewMockBlockedUserRepository(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	factory.EXPECT().MealRepo().Return(txMealRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().BlockedUserRepo().Return(txBlockedRepo)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)

	var steps []string

	txBlockedRepo.EXPECT().DeleteByUser(ctx, target.ID).
		Run(func(ctx context.Context, userID uuid.UUID) { steps = append(steps, "blocklist by user") }).Return(nil)
	txRestaurantRepo.EXPECT().ListIDsByOwner(ctx, target.ID).Return([]uuid.UUID{restaurantID}, nil)
	txBlockedRepo.EXPECT().DeleteByRestaurant(ctx, restaurantID).
		Run(func(ctx context.Context, restaurantID uuid.UUID) { steps = append(steps, "blocklist by restaurant") }).Return(nil)
	txMealRepo.EXPECT().DeleteByRestaurant(ctx, restaurantID).
		Run(func(ctx context.Context, restaurantID uuid.UUID) { steps = append(steps, "meals") }).Return(nil)
	txOrderRepo.EXPECT().DeleteByRestaurant(ctx, restaurantID).
		Run(func(ctx context.Context, restaurantID uuid.UUID) { steps = append(steps, "restaurant orders") }).Return(nil)
	txRestaurantRepo.EXPECT().Delete(ctx, restaurantID).
		Run(func(ctx context.Context, id uuid.UUID) { steps = append(steps, "restaurant row") }).Return(nil)
	txOrderRepo.EXPECT().DeleteByUser(ctx, target.ID).
		Run(func(ctx context.Context, userID uuid.UUID) { steps = append(steps, "own orders") }).Return(nil)
	txRefreshRepo.EXPECT().DeleteByUser(ctx, target.ID).
		Run(func(ctx context.Context, userID uuid.UUID) { steps = append(steps, "sessions") }).Return(nil)
	txUserRepo.EXPECT().Delete(ctx, target.ID).
		Run(func(ctx context.Context, id uuid.UUID) { steps = append(steps, "user row") }).Return(nil)

	runInTx(m.txManager, ctx, factory)

	err := srv.Delete(ctx, admin, target.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"blocklist by user",
		"blocklist by restaurant",
		"meals",
		"restaurant orders",
		"restaurant row",
		"own orders",
		"sessions",
		"user row",
	}, steps)
}

func TestUserService_Delete_UnknownUser(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	admin := service.Caller{ID: uuid.New(), Role: entity.RoleAdmin}
	id := uuid.New()

	m.guard.EXPECT().RequireRole(admin, entity.RoleAdmin).Return(nil)
	m.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	err := srv.Delete(ctx, admin, id)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
