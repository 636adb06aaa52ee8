package repos

import (
	"gorm.io/gorm"

	"github.com/petuhovskiy/lootkit/internal/models"
)

type DrawRepo struct {
	db *gorm.DB
}

func NewDrawRepo(db *gorm.DB) *DrawRepo {
	return &DrawRepo{
		db: db,
	}
}

// Save draw to the database.
func (r *DrawRepo) Save(draw *models.Draw) error {
	return r.db.Save(draw).Error
}

func (r *DrawRepo) FetchLast(tableName string, limit int) ([]models.Draw, error) {
	var draws []models.Draw
	err := r.db.
		Where("table_name = ?", tableName).
		Order("id DESC").
		Limit(limit).
		Find(&draws).
		Error

	return draws, err
}
