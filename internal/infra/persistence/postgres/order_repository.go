// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUpdate loads the order under a row-level write lock so that
// concurrent transition attempts on the same order are serialized.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// Create persists the order with its line snapshots and the seeded track.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or restaurant reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// AppendTransition atomically sets the order status and appends the matching
// track entry. The jsonb concatenation keeps the append on the database side,
// so the track is never read-modified-written.
func (repo *orderRepository) AppendTransition(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus, at time.Time) error {
	entry, err := json.Marshal(model.TrackRecord{Status: int(status), Time: at})
	if err != nil {
		return errors.Wrap(err, "failed to encode track entry")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"status":     int(status),
			"track":      gorm.Expr("track || ?::jsonb", string(entry)),
			"updated_at": at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to append status transition")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order by its ID.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// DeleteByRestaurant removes every order of a restaurant (cascade step).
func (repo *orderRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Delete(&model.OrderModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete orders by restaurant")
	}

	return nil
}

// DeleteByUser removes every order placed by a user (cascade step).
func (repo *orderRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.OrderModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete orders by user")
	}

	return nil
}

// List returns a page of orders matching the query, newest first, plus the
// total match count.
func (repo *orderRepository) List(ctx context.Context, query repository.ListOrdersQuery) ([]*entity.Order, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if query.Status != 0 {
		tx = tx.Where("status = ?", int(query.Status))
	}
	if query.UserID != uuid.Nil {
		tx = tx.Where("user_id = ?", query.UserID)
	}
	if len(query.RestaurantIDs) > 0 {
		tx = tx.Where("restaurant_id IN ?", query.RestaurantIDs)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := tx.
		Order("created_at DESC").
		Limit(query.PerPage).
		Offset(query.Offset()).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]entity.OrderLine, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, entity.OrderLine{
			MealID: line.MealID,
			Name:   line.Name,
			Price:  line.Price,
			Count:  line.Count,
		})
	}

	track := make([]entity.TrackEntry, 0, len(data.Track))
	for _, entry := range data.Track {
		track = append(track, entity.TrackEntry{
			Status: entity.OrderStatus(entry.Status),
			Time:   entry.Time,
		})
	}

	return &entity.Order{
		ID:           data.ID,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		Lines:        lines,
		Total:        data.Total,
		Status:       entity.OrderStatus(data.Status),
		Track:        track,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	lines := make(model.OrderLineList, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, model.OrderLineRecord{
			MealID: line.MealID,
			Name:   line.Name,
			Price:  line.Price,
			Count:  line.Count,
		})
	}

	track := make(model.TrackList, 0, len(data.Track))
	for _, entry := range data.Track {
		track = append(track, model.TrackRecord{
			Status: int(entry.Status),
			Time:   entry.Time,
		})
	}

	return &model.OrderModel{
		ID:           data.ID,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		Lines:        lines,
		Total:        data.Total,
		Status:       int(data.Status),
		Track:        track,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
