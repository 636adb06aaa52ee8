package repos

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/petuhovskiy/lootkit/internal/log"
	"github.com/petuhovskiy/lootkit/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_DSN is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.WeightTable{}, &models.Draw{}))
	return db
}

// Run with `export $(cat .env | xargs) && go test ./internal/repos -v`
func TestTableRepo(t *testing.T) {
	_ = log.DefaultGlobals()
	repo := NewTableRepo(testDB(t))

	name := fmt.Sprintf("test-%d", time.Now().UnixNano())
	err := repo.Create(&models.WeightTable{
		Name:    name,
		Enabled: true,
		Desc:    json.RawMessage(`{"Name":"` + name + `","Items":[{"Weight":1,"Item":"x"}]}`),
	})
	require.NoError(t, err)

	table, err := repo.FindByName(name)
	require.NoError(t, err)
	require.NotNil(t, table)
	assert.True(t, table.Enabled)

	tables, err := repo.AllEnabled([]Filter{FilterByName(name)})
	require.NoError(t, err)
	assert.Len(t, tables, 1)

	missing, err := repo.FindByName(name + "-missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDrawRepo(t *testing.T) {
	_ = log.DefaultGlobals()
	repo := NewDrawRepo(testDB(t))

	name := fmt.Sprintf("test-%d", time.Now().UnixNano())
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(&models.Draw{TableName: name, Item: "x", Index: i}))
	}

	draws, err := repo.FetchLast(name, 2)
	require.NoError(t, err)
	if assert.Len(t, draws, 2) {
		assert.Equal(t, 2, draws[0].Index)
	}
}
