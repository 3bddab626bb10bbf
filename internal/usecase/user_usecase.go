package usecase

import (
	"context"

	"platter/internal/domain/entity"
	"platter/internal/domain/service"

	"github.com/google/uuid"
)

// CreateUserInput defines the data an administrator supplies to provision an
// account with any role.
type CreateUserInput struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     entity.Role `json:"role" validate:"required"`
}

// UpdateUserInput is a partial account update. Nil fields are left untouched.
// Role changes are silently dropped unless the caller is an administrator.
type UpdateUserInput struct {
	Name     *string      `json:"name"`
	Email    *string      `json:"email" validate:"omitempty,email"`
	Password *string      `json:"password" validate:"omitempty,min=8"`
	Role     *entity.Role `json:"role"`
}

// ListUsersInput filters the admin account listing.
type ListUsersInput struct {
	Page    int         `query:"page"`
	PerPage int         `query:"perPage"`
	Search  string      `query:"search"`
	Role    entity.Role `query:"role"`
}

// UserListOutput is one page of accounts.
type UserListOutput struct {
	Users      []*entity.User `json:"users"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

// UserUsecase covers account management. List/Create/Update/Delete on foreign
// accounts are administrator operations; the Self variants serve the
// authenticated account itself.
type UserUsecase interface {
	Get(ctx context.Context, caller service.Caller, id uuid.UUID) (*entity.User, error)
	GetSelf(ctx context.Context, caller service.Caller) (*entity.User, error)
	List(ctx context.Context, caller service.Caller, input *ListUsersInput) (*UserListOutput, error)
	Create(ctx context.Context, caller service.Caller, input *CreateUserInput) (*entity.User, error)
	Update(ctx context.Context, caller service.Caller, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	UpdateSelf(ctx context.Context, caller service.Caller, input *UpdateUserInput) (*entity.User, error)

	// Delete removes the account and everything reachable from it: blocklist
	// rows naming the user, owned restaurants with their meals/orders/blocklist
	// entries, and orders the user placed.
	Delete(ctx context.Context, caller service.Caller, id uuid.UUID) error
}
