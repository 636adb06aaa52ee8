package repos

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/petuhovskiy/lootkit/internal/models"
)

type TableRepo struct {
	db *gorm.DB
}

func NewTableRepo(db *gorm.DB) *TableRepo {
	return &TableRepo{
		db: db,
	}
}

// AllEnabled returns enabled tables matching the filters, ordered by priority.
func (r *TableRepo) AllEnabled(filters []Filter) ([]models.WeightTable, error) {
	filters = append([]Filter{FilterEnabled()}, filters...)
	tables, err := r.Find(filters)
	if err != nil {
		return nil, fmt.Errorf("find enabled tables: %w", err)
	}
	return tables, nil
}

// Find returns all tables filtered by the given filters.
func (r *TableRepo) Find(filters []Filter) ([]models.WeightTable, error) {
	var tables []models.WeightTable

	db := r.db
	for _, filter := range filters {
		db = filter.Apply(db)
	}

	err := db.
		Order("priority ASC").
		Order("id ASC").
		Find(&tables).
		Error
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// FindByName returns nil if the table does not exist.
func (r *TableRepo) FindByName(name string) (*models.WeightTable, error) {
	var table models.WeightTable
	err := r.db.
		Where("name = ?", name).
		First(&table).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *TableRepo) Create(table *models.WeightTable) error {
	return r.db.Create(table).Error
}
