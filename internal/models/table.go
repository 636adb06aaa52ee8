package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// WeightTable is a database model for a named weighted table.
type WeightTable struct {
	gorm.Model

	// Name is unique among all tables, including deleted ones.
	Name string `gorm:"uniqueIndex"`

	Enabled  bool
	Priority int

	// rdesc.Table
	Desc json.RawMessage `gorm:"type:jsonb"`
}
