package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

type authServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
}

func newAuthService(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	m := &authServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockService.NewMockPasswordHasher(t),
		tokenService:     mockService.NewMockTokenService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewAuthService(AuthServiceParams{
		TxManager:        m.txManager,
		UserRepo:         m.userRepo,
		RefreshTokenRepo: m.refreshTokenRepo,
		Hasher:           m.hasher,
		TokenService:     m.tokenService,
		Logger:           logger,
	})

	return srv, m
}

func TestAuthService_Register_Success(t *testing.T) {
	srv, m := newAuthService(t)

	ctx := context.Background()

	m.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), "hashed-password").
		Return(nil)
	m.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), entity.RoleUser).
		Return("access-token", "refresh-token", nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	m.refreshTokenRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(token *repository.RefreshToken) bool {
			return token.TokenHash == "refresh-hash" && token.ExpiresAt.After(time.Now())
		})).
		Return(nil)

	output, err := srv.Register(ctx, &usecase.RegisterInput{
		Name:     "New Customer",
		Email:    "customer@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	// Registration always creates a customer account.
	assert.Equal(t, entity.RoleUser, output.User.Role)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	srv, m := newAuthService(t)

	ctx := context.Background()

	m.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), "hashed-password").
		Return(domainerrors.ErrEmailAlreadyRegistered)

	_, err := srv.Register(ctx, &usecase.RegisterInput{
		Name:     "Duplicate",
		Email:    "taken@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Login_Success(t *testing.T) {
	srv, m := newAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "customer@example.com", Role: entity.RoleUser}

	m.userRepo.EXPECT().PasswordHashByEmail(ctx, user.Email).Return("stored-hash", nil)
	m.hasher.EXPECT().Check("password123", "stored-hash").Return(true)
	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	m.tokenService.EXPECT().GenerateTokens(user.ID, user.Role).
		Return("access-token", "refresh-token", nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	m.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*repository.RefreshToken")).
		Return(nil)

	output, err := srv.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	srv, m := newAuthService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().PasswordHashByEmail(ctx, "customer@example.com").Return("stored-hash", nil)
	m.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	_, err := srv.Login(ctx, &usecase.LoginInput{
		Email:    "customer@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	srv, m := newAuthService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().PasswordHashByEmail(ctx, "ghost@example.com").
		Return("", repository.ErrUserNotFound)

	_, err := srv.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "password123",
	})

	// Unknown accounts and wrong passwords are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	srv, m := newAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	m.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: user.ID, Type: "refresh"}, nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.refreshTokenRepo.EXPECT().FindByHash(ctx, "refresh-hash").
		Return(&repository.RefreshToken{UserID: user.ID, TokenHash: "refresh-hash"}, nil)
	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.tokenService.EXPECT().GenerateTokens(user.ID, user.Role).
		Return("new-access-token", "unused-refresh", nil)

	output, err := srv.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	srv, m := newAuthService(t)

	ctx := context.Background()

	m.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.refreshTokenRepo.EXPECT().FindByHash(ctx, "refresh-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := srv.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-token"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_MalformedToken(t *testing.T) {
	srv, m := newAuthService(t)

	ctx := context.Background()

	m.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, assert.AnError)

	_, err := srv.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "garbage"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout_Success(t *testing.T) {
	srv, m := newAuthService(t)

	ctx := context.Background()

	m.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.refreshTokenRepo.EXPECT().DeleteByHash(ctx, "refresh-hash").Return(nil)

	err := srv.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
}

func TestAuthService_Logout_InvalidTokenStillDeleted(t *testing.T) {
	srv, m := newAuthService(t)

	ctx := context.Background()

	m.tokenService.EXPECT().ValidateRefreshToken("expired").Return(nil, assert.AnError)
	m.tokenService.EXPECT().HashToken("expired").Return("expired-hash")
	m.refreshTokenRepo.EXPECT().DeleteByHash(ctx, "expired-hash").Return(nil)

	err := srv.Logout(ctx, &usecase.LogoutInput{RefreshToken: "expired"})

	require.NoError(t, err)
}
