package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity. Exactly one role is assigned per account;
// the role decides which marketplace operations the account may perform.
type User struct {
	ID        uuid.UUID // The unique identifier for the account.
	Name      string    // The user's display name.
	Email     string    // The user's login email. Unique across the system.
	Role      Role      // admin, owner or user.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// IsAdmin reports whether the account holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
