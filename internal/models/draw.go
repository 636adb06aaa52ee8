package models

import "time"

// Draw is a single pick from a table. Failed picks are stored too.
type Draw struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	// TableID is a foreign key to the table.
	TableID uint

	TableName string `gorm:"index"`

	// Item is the selected item, empty for failed picks.
	Item string

	// Index of the selected item in the table.
	Index int

	// Roll is the uniform draw in [0,1) that selected the item.
	Roll float64

	// Taken from `NODE` environment variable.
	Node string

	// Error message if the pick failed.
	Error string
}
