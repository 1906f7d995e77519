package model

import (
	"github.com/google/uuid"
)

// JurisdictionModel is the GORM-specific struct for the 'tax_jurisdictions'
// table. The geom column is a PostGIS multi-polygon; it is written and
// queried through raw spatial SQL, so the struct only carries the scalar
// columns back to the domain.
type JurisdictionModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Name  string    `gorm:"type:varchar(255);not null;index:idx_tax_jurisdictions_on_name"`
	Level string    `gorm:"type:varchar(16);not null"`
	Rate  float64   `gorm:"type:numeric(10,6);not null"`
}

// TableName explicitly sets the table name for GORM.
func (JurisdictionModel) TableName() string {
	return "tax_jurisdictions"
}
