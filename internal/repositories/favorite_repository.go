package repositories

import (
	"fmt"

	"khanamart/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository defines the interface for favorites data access.
type FavoriteRepository interface {
	GetByUser(userID string) ([]models.Favorite, error)
	Add(favorite *models.Favorite) error
	Remove(userID, productID string) error
}

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// GetByUser retrieves the user's favorites in the order they were added.
func (r *GORMFavoriteRepository) GetByUser(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to get favorites for user %s: %w", userID, err)
	}
	return favorites, nil
}

// Add marks a product as a favorite. Re-adding an existing favorite is a
// no-op rather than a conflict.
func (r *GORMFavoriteRepository) Add(favorite *models.Favorite) error {
	err := r.db.FirstOrCreate(favorite, models.Favorite{
		UserID:    favorite.UserID,
		ProductID: favorite.ProductID,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove unmarks a product as a favorite.
func (r *GORMFavoriteRepository) Remove(userID, productID string) error {
	res := r.db.Delete(&models.Favorite{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("favorite for product %s not found", productID)
	}
	return nil
}
