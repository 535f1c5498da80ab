package db

import (
	"github.com/wellnestlab/wellnest/internal/models"
	"gorm.io/gorm"
)

type StreakRepository struct {
	database *gorm.DB
}

func NewStreakRepository(database *gorm.DB) *StreakRepository {
	return &StreakRepository{database: database}
}

func (repo *StreakRepository) FindByUser(userID uint) (models.StreakRecord, bool, error) {
	record := models.StreakRecord{}
	result := repo.database.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.StreakRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.StreakRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *StreakRepository) Create(record *models.StreakRecord) error {
	return repo.database.Create(record).Error
}

func (repo *StreakRepository) Save(record *models.StreakRecord) error {
	return repo.database.Save(record).Error
}
