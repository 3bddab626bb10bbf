// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity together with its password hash.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	userM := fromUserDomain(user)
	userM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the storage. An empty
// passwordHash leaves the stored hash untouched.
func (repo *userRepository) Update(ctx context.Context, user *entity.User, passwordHash string) error {
	updates := map[string]any{
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role.String(),
	}
	if passwordHash != "" {
		updates["password_hash"] = passwordHash
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}

		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// PasswordHashByEmail returns the stored password hash for a login email.
func (repo *userRepository) PasswordHashByEmail(ctx context.Context, email string) (string, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Select("password_hash").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to load password hash")
	}

	return userM.PasswordHash, nil
}

// Delete removes the user row only; cascading cleanup is orchestrated by the usecase.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns a page of accounts matching the query plus the total match count.
func (repo *userRepository) List(ctx context.Context, query repository.ListUsersQuery) ([]*entity.User, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.UserModel{})

	if query.Search != "" {
		tx = tx.Where("name ILIKE ?", "%"+query.Search+"%")
	}
	if query.Role != "" {
		tx = tx.Where("role = ?", query.Role.String())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	var userModels []*model.UserModel
	if err := tx.
		Order("created_at DESC").
		Limit(query.PerPage).
		Offset(query.Offset()).
		Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// ListCustomersOfRestaurant returns the users who have placed at least one
// order against the restaurant, flagged with their blocklist state.
func (repo *userRepository) ListCustomersOfRestaurant(ctx context.Context, restaurantID uuid.UUID, page repository.Page) ([]*repository.RestaurantCustomer, int64, error) {
	type customerRow struct {
		model.UserModel
		Blocked bool
	}

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("EXISTS (SELECT 1 FROM orders o WHERE o.user_id = users.id AND o.restaurant_id = ?)", restaurantID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count restaurant customers")
	}

	var rows []*customerRow
	if err := repo.db.WithContext(ctx).
		Table("users").
		Select("users.*, EXISTS (SELECT 1 FROM blocked_users b WHERE b.restaurant_id = ? AND b.user_id = users.id) AS blocked", restaurantID).
		Where("EXISTS (SELECT 1 FROM orders o WHERE o.user_id = users.id AND o.restaurant_id = ?)", restaurantID).
		Order("users.created_at DESC").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list restaurant customers")
	}

	customers := make([]*repository.RestaurantCustomer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, &repository.RestaurantCustomer{
			User:    toUserDomain(&row.UserModel),
			Blocked: row.Blocked,
		})
	}

	return customers, total, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Role:      entity.Role(data.Role),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Role:      data.Role.String(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
