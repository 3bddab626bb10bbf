package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// OrderLineRecord is one denormalized meal snapshot stored inside the order row.
type OrderLineRecord struct {
	MealID uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Price  float64   `json:"price"`
	Count  int       `json:"count"`
}

// OrderLineList stores the order's line snapshots as a JSONB column.
type OrderLineList []OrderLineRecord

// Value implements driver.Valuer for JSONB serialization.
func (l OrderLineList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB deserialization.
func (l *OrderLineList) Scan(value any) error {
	return scanJSON(value, l)
}

// TrackRecord is one step of the order's status history stored inside the order row.
type TrackRecord struct {
	Status int       `json:"status"`
	Time   time.Time `json:"time"`
}

// TrackList stores the order's status history as a JSONB column.
type TrackList []TrackRecord

// Value implements driver.Valuer for JSONB serialization.
func (t TrackList) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan implements sql.Scanner for JSONB deserialization.
func (t *TrackList) Scan(value any) error {
	return scanJSON(value, t)
}

// scanJSON handles the two driver representations of a JSONB column.
func scanJSON(value, dest any) error {
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, dest)
	case string:
		return json.Unmarshal([]byte(data), dest)
	case nil:
		return nil
	default:
		return errors.Errorf("unsupported jsonb source type %T", value)
	}
}

// OrderModel mirrors the 'orders' table. The line snapshots and the status
// track live inside the row as JSONB, matching their append-only, read-whole
// access pattern.
type OrderModel struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID     `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Lines        OrderLineList `gorm:"type:jsonb;not null"`
	Total        float64       `gorm:"type:numeric(10,2);not null"`
	Status       int           `gorm:"not null;index"`
	Track        TrackList     `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time     `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
