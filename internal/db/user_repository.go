package db

import (
	"strings"

	"github.com/wellnestlab/wellnest/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).
		Where("email = ?", normalizeEmail(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.
		Where("email = ?", normalizeEmail(email)).
		Limit(1).
		Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Where("id = ?", userID).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	return repo.database.Create(user).Error
}
