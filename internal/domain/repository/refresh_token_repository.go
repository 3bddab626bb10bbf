package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token hash does not resolve.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshToken is a stored session credential. Only the hash of the token
// string ever reaches the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// RefreshTokenRepository defines the operations for session persistence.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error

	// FindByHash returns the stored token for the hash, ignoring expired rows.
	FindByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)

	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUser invalidates every session of a user (account deletion).
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
