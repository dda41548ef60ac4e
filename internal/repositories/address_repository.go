package repositories

import (
	"fmt"

	"khanamart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressRepository defines the interface for saved-address data access.
type AddressRepository interface {
	GetByUser(userID string) ([]models.SavedAddress, error)
	GetByID(id string) (*models.SavedAddress, error)
	Create(address *models.SavedAddress) error
	Update(address *models.SavedAddress) error
	Delete(id string) error
}

// GORMAddressRepository is a GORM implementation of AddressRepository.
type GORMAddressRepository struct {
	db *gorm.DB
}

// NewGORMAddressRepository creates a new instance of GORMAddressRepository.
func NewGORMAddressRepository(db *gorm.DB) *GORMAddressRepository {
	return &GORMAddressRepository{
		db: db,
	}
}

// GetByUser retrieves all saved addresses for the user.
func (r *GORMAddressRepository) GetByUser(userID string) ([]models.SavedAddress, error) {
	var addresses []models.SavedAddress
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to get addresses for user %s: %w", userID, err)
	}
	return addresses, nil
}

// GetByID retrieves a saved address by its ID.
func (r *GORMAddressRepository) GetByID(id string) (*models.SavedAddress, error) {
	var address models.SavedAddress
	if err := r.db.First(&address, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("address with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get address by ID %s: %w", id, err)
	}
	return &address, nil
}

// Create inserts a new saved address, generating an ID when none is set.
func (r *GORMAddressRepository) Create(address *models.SavedAddress) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// Update saves changes to an existing saved address.
func (r *GORMAddressRepository) Update(address *models.SavedAddress) error {
	res := r.db.Save(address)
	if res.Error != nil {
		return fmt.Errorf("failed to update address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address with ID %s not found for update", address.ID)
	}
	return nil
}

// Delete removes a saved address by its ID.
func (r *GORMAddressRepository) Delete(id string) error {
	res := r.db.Delete(&models.SavedAddress{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address with ID %s not found for deletion", id)
	}
	return nil
}
