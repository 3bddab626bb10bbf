// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// blockedUserRepository implements the repository.BlockedUserRepository interface.
type blockedUserRepository struct {
	db *gorm.DB
}

// NewBlockedUserRepository is the constructor for blockedUserRepository.
func NewBlockedUserRepository(db *gorm.DB) repository.BlockedUserRepository {
	return &blockedUserRepository{
		db: db,
	}
}

// IsBlocked reports whether a block record exists for the pair.
func (repo *blockedUserRepository) IsBlocked(ctx context.Context, restaurantID, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BlockedUserModel{}).
		Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check block record")
	}

	return count > 0, nil
}

// Block inserts a record for the pair if absent. The conflict clause makes a
// repeated block a no-op against the composite unique index.
func (repo *blockedUserRepository) Block(ctx context.Context, restaurantID, userID uuid.UUID) error {
	blockM := &model.BlockedUserModel{
		RestaurantID: restaurantID,
		UserID:       userID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(blockM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid restaurant or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create block record")
	}

	return nil
}

// Unblock deletes all records for the pair. A no-op when none exist.
func (repo *blockedUserRepository) Unblock(ctx context.Context, restaurantID, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).
		Delete(&model.BlockedUserModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete block record")
	}

	return nil
}

// DeleteByRestaurant removes every block entry of a restaurant (cascade step).
func (repo *blockedUserRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Delete(&model.BlockedUserModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete block records by restaurant")
	}

	return nil
}

// DeleteByUser removes every block entry referencing the user (cascade step).
func (repo *blockedUserRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.BlockedUserModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete block records by user")
	}

	return nil
}
