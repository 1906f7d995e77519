package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"taxgrid/internal/domain/entity"
	"taxgrid/internal/errors"

	"github.com/google/uuid"
)

// BreakdownColumn stores the per-level rate breakdown as a JSONB column.
type BreakdownColumn entity.RateBreakdown

// Value implements driver.Valuer for JSONB storage.
func (b BreakdownColumn) Value() (driver.Value, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, errors.Wrap(err, "marshal breakdown")
	}

	return string(raw), nil
}

// Scan implements sql.Scanner for JSONB retrieval.
func (b *BreakdownColumn) Scan(value any) error {
	raw, err := jsonBytes(value)
	if err != nil {
		return err
	}

	return errors.Wrap(json.Unmarshal(raw, b), "unmarshal breakdown")
}

// NamesColumn stores the ordered jurisdiction name list as a JSONB column.
type NamesColumn []string

// Value implements driver.Valuer for JSONB storage.
func (n NamesColumn) Value() (driver.Value, error) {
	if n == nil {
		n = NamesColumn{}
	}

	raw, err := json.Marshal(n)
	if err != nil {
		return nil, errors.Wrap(err, "marshal jurisdiction names")
	}

	return string(raw), nil
}

// Scan implements sql.Scanner for JSONB retrieval.
func (n *NamesColumn) Scan(value any) error {
	raw, err := jsonBytes(value)
	if err != nil {
		return err
	}

	return errors.Wrap(json.Unmarshal(raw, n), "unmarshal jurisdiction names")
}

func jsonBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return []byte("null"), nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.Errorf("unsupported jsonb source type %T", value)
	}
}

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Lat              float64         `gorm:"type:decimal(10,8);not null"`
	Lon              float64         `gorm:"type:decimal(11,8);not null"`
	Subtotal         float64         `gorm:"type:numeric(12,2);not null"`
	CompositeTaxRate float64         `gorm:"type:numeric(10,6);not null"`
	TaxAmount        float64         `gorm:"type:numeric(12,2);not null"`
	TotalAmount      float64         `gorm:"type:numeric(12,2);not null"`
	Breakdown        BreakdownColumn `gorm:"type:jsonb;not null"`
	Jurisdictions    NamesColumn     `gorm:"type:jsonb;not null"`
	Timestamp        time.Time       `gorm:"not null;index:idx_orders_on_timestamp"`
	InServiceArea    bool            `gorm:"not null;default:false"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
