package db

import (
	"github.com/wellnestlab/wellnest/internal/models"
	"gorm.io/gorm"
)

type PredictionRepository struct {
	database *gorm.DB
}

func NewPredictionRepository(database *gorm.DB) *PredictionRepository {
	return &PredictionRepository{database: database}
}

// FindLatestByUser returns the newest prediction row, which is the only
// authoritative one.
func (repo *PredictionRepository) FindLatestByUser(userID uint) (models.CyclePrediction, bool, error) {
	prediction := models.CyclePrediction{}
	result := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&prediction)
	if result.Error != nil {
		return models.CyclePrediction{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CyclePrediction{}, false, nil
	}
	return prediction, true, nil
}

func (repo *PredictionRepository) Create(prediction *models.CyclePrediction) error {
	return repo.database.Create(prediction).Error
}

func (repo *PredictionRepository) Save(prediction *models.CyclePrediction) error {
	return repo.database.Save(prediction).Error
}
