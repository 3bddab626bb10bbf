package repository

import (
	"context"
	"errors"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ListUsersQuery filters the account listing.
type ListUsersQuery struct {
	Page
	Search string // Optional case-insensitive match against the user name.
	Role   entity.Role
}

// RestaurantCustomer is a customer of a restaurant together with their
// blocklist state, as shown on the owner's customer management screen.
type RestaurantCustomer struct {
	User    *entity.User
	Blocked bool
}

// UserRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity together with its password hash.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// Update modifies an existing user entity in the storage. An empty
	// passwordHash leaves the stored hash untouched.
	Update(ctx context.Context, user *entity.User, passwordHash string) error

	// PasswordHashByEmail returns the stored password hash for a login email.
	PasswordHashByEmail(ctx context.Context, email string) (string, error)

	// Delete removes the user row only; cascading cleanup is orchestrated by the usecase.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns a page of accounts matching the query plus the total match count.
	List(ctx context.Context, query ListUsersQuery) ([]*entity.User, int64, error)

	// ListCustomersOfRestaurant returns the users who have placed at least one
	// order against the restaurant, flagged with their blocklist state.
	ListCustomersOfRestaurant(ctx context.Context, restaurantID uuid.UUID, page Page) ([]*RestaurantCustomer, int64, error)
}
