package rdesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/lootkit/internal/wrand"
)

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte(`{
		"Name": "chest",
		"Items": [
			{"Weight": 1, "Item": "sword"},
			{"Weight": 3, "Item": "gold"}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "chest", table.Name)
	assert.Equal(t, []string{"sword", "gold"}, table.Items.Items())
}

func TestParseTable_Invalid(t *testing.T) {
	_, err := ParseTable([]byte(`{"Name": "chest"}`))
	assert.ErrorIs(t, err, wrand.ErrEmptySequence)

	_, err = ParseTable([]byte(`{"Name": "chest", "Items": [{"Weight": 0, "Item": "x"}]}`))
	assert.ErrorIs(t, err, wrand.ErrDegenerateWeights)

	_, err = ParseTable([]byte(`{"Name": "chest", "Items": [{"Weight": -2, "Item": "x"}]}`))
	assert.ErrorIs(t, err, wrand.ErrInvalidWeight)

	_, err = ParseTable([]byte(`{"Items": [{"Weight": 1, "Item": "x"}]}`))
	assert.Error(t, err)

	_, err = ParseTable([]byte(`not json`))
	assert.Error(t, err)
}
