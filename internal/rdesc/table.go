package rdesc

import (
	"encoding/json"
	"fmt"

	"github.com/petuhovskiy/lootkit/internal/wrand"
)

// Table describes a named weighted table. Can be serialized and deserialized to/from JSON.
type Table struct {
	// Name is used to pick from the table.
	Name string
	// Items with their relative weights.
	Items wrand.Wrand[string]
	// Free-form comment, not used by the service.
	Comment string `json:",omitempty"`
}

func ParseTable(data json.RawMessage) (*Table, error) {
	var table Table
	err := json.Unmarshal(data, &table)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal table: %w", err)
	}

	err = table.Validate()
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// Validate checks that the table has a name and a well-defined distribution.
func (t *Table) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("table name must be set")
	}

	err := t.Items.Validate()
	if err != nil {
		return fmt.Errorf("table %q: %w", t.Name, err)
	}
	return nil
}
