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

// mealRepository implements the repository.MealRepository interface.
type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{
		db: db,
	}
}

// FindByID retrieves a single meal by its unique ID.
func (repo *mealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	var mealM model.MealModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&mealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal by ID")
	}

	return toMealDomain(&mealM), nil
}

// Create persists a new meal.
func (repo *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRestaurantNotFound.WrapMessage("invalid restaurant reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required meal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal")
	}

	// Update the entity with generated values
	meal.ID = mealM.ID
	meal.CreatedAt = mealM.CreatedAt
	meal.UpdatedAt = mealM.UpdatedAt

	return nil
}

// Update modifies name, description and price. The restaurant reference
// is immutable after creation.
func (repo *mealRepository) Update(ctx context.Context, meal *entity.Meal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("id = ?", meal.ID).
		Updates(map[string]any{
			"name":        meal.Name,
			"description": meal.Description,
			"price":       meal.Price,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update meal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// Delete removes a meal by its ID.
func (repo *mealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MealModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete meal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// DeleteByRestaurant removes every meal of a restaurant (cascade step).
func (repo *mealRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Delete(&model.MealModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete meals by restaurant")
	}

	return nil
}

// List returns a page of meals matching the query plus the total match count.
func (repo *mealRepository) List(ctx context.Context, query repository.ListMealsQuery) ([]*entity.Meal, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.MealModel{})

	if query.Search != "" {
		tx = tx.Where("name ILIKE ?", "%"+query.Search+"%")
	}
	if query.RestaurantID != uuid.Nil {
		tx = tx.Where("restaurant_id = ?", query.RestaurantID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count meals")
	}

	var mealModels []*model.MealModel
	if err := tx.
		Order("created_at DESC").
		Limit(query.PerPage).
		Offset(query.Offset()).
		Find(&mealModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list meals")
	}

	meals := make([]*entity.Meal, 0, len(mealModels))
	for _, mealM := range mealModels {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals, total, nil
}

// --- Mapper Functions ---

// toMealDomain converts a GORM MealModel to a domain Meal entity.
func toMealDomain(data *model.MealModel) *entity.Meal {
	if data == nil {
		return nil
	}

	return &entity.Meal{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromMealDomain converts a domain Meal entity to a GORM MealModel.
func fromMealDomain(data *entity.Meal) *model.MealModel {
	if data == nil {
		return nil
	}

	return &model.MealModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
