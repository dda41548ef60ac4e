package repositories

import (
	"fmt"

	"khanamart/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository defines the interface for user settings data access.
type SettingsRepository interface {
	Get(userID string) (*models.UserSettings, error)
	Save(settings *models.UserSettings) error
}

// GORMSettingsRepository is a GORM implementation of SettingsRepository.
type GORMSettingsRepository struct {
	db *gorm.DB
}

// NewGORMSettingsRepository creates a new instance of GORMSettingsRepository.
func NewGORMSettingsRepository(db *gorm.DB) *GORMSettingsRepository {
	return &GORMSettingsRepository{
		db: db,
	}
}

// Get retrieves the user's settings, falling back to defaults when the
// user has never saved any.
func (r *GORMSettingsRepository) Get(userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := r.db.First(&settings, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			defaults := models.DefaultSettings(userID)
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to get settings for user %s: %w", userID, err)
	}
	return &settings, nil
}

// Save upserts the user's settings row.
func (r *GORMSettingsRepository) Save(settings *models.UserSettings) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(settings).Error
	if err != nil {
		return fmt.Errorf("failed to save settings for user %s: %w", settings.UserID, err)
	}
	return nil
}
