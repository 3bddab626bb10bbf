package model

import (
	"time"

	"github.com/google/uuid"
)

// BlockedUserModel mirrors the 'blocked_users' table. The composite unique
// index keeps the restaurant/user pair a pure existence check.
type BlockedUserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blocked_restaurant_user"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blocked_restaurant_user"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlockedUserModel) TableName() string {
	return "blocked_users"
}
