package db

import (
	"github.com/wellnestlab/wellnest/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) ListByUser(userID uint) ([]models.CycleEntry, error) {
	entries := make([]models.CycleEntry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("period_start_date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *CycleRepository) FindLatestByUser(userID uint) (models.CycleEntry, bool, error) {
	return findLatestEntry(repo.database, userID)
}

func (repo *CycleRepository) FindByIDForUser(userID uint, cycleID uint) (models.CycleEntry, bool, error) {
	entry := models.CycleEntry{}
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, cycleID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.CycleEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleEntry{}, false, nil
	}
	return entry, true, nil
}

// CreateWithBackfill inserts the entry and, inside the same transaction,
// writes the gap reported by gapFromPrior onto the most recent prior entry
// when that entry has no cycle length yet. A non-positive gap writes nothing.
func (repo *CycleRepository) CreateWithBackfill(entry *models.CycleEntry, gapFromPrior func(prior models.CycleEntry) int) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		prior, priorFound, err := findLatestEntry(tx, entry.UserID)
		if err != nil {
			return err
		}

		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		if !priorFound || prior.CycleLength != nil {
			return nil
		}
		gap := gapFromPrior(prior)
		if gap <= 0 {
			return nil
		}
		return tx.Model(&models.CycleEntry{}).
			Where("id = ?", prior.ID).
			Update("cycle_length", gap).Error
	})
}

func (repo *CycleRepository) Save(entry *models.CycleEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *CycleRepository) DeleteByIDForUser(userID uint, cycleID uint) (bool, error) {
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, cycleID).
		Delete(&models.CycleEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func findLatestEntry(database *gorm.DB, userID uint) (models.CycleEntry, bool, error) {
	entry := models.CycleEntry{}
	result := database.
		Where("user_id = ?", userID).
		Order("period_start_date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.CycleEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleEntry{}, false, nil
	}
	return entry, true, nil
}
