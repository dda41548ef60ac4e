package repositories

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"khanamart/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRecord is the stored form of a cart: one row per user holding the
// serialized cart state.
type cartRecord struct {
	UserID    string `gorm:"primaryKey;type:varchar(36)"`
	Payload   string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (cartRecord) TableName() string { return "carts" }

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Load reads the user's cart. A missing row yields the empty cart; a
// corrupted payload is logged and likewise falls back to the empty cart so
// a bad stored value can never wedge the account.
func (r *GORMCartRepository) Load(userID string) (models.CartState, error) {
	var record cartRecord
	if err := r.db.First(&record, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.EmptyCart(), nil
		}
		return models.EmptyCart(), fmt.Errorf("failed to load cart for user %s: %w", userID, err)
	}

	var state models.CartState
	if err := json.Unmarshal([]byte(record.Payload), &state); err != nil {
		log.Printf("Discarding corrupted cart payload for user %s: %v", userID, err)
		return models.EmptyCart(), nil
	}
	if state.Items == nil {
		state.Items = []models.CartItem{}
	}
	return state, nil
}

// Save writes the full cart state for the user, replacing any prior row.
func (r *GORMCartRepository) Save(userID string, state models.CartState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for user %s: %w", userID, err)
	}
	record := cartRecord{UserID: userID, Payload: string(payload)}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to save cart for user %s: %w", userID, err)
	}
	return nil
}

// Delete removes the user's stored cart. Absent rows are not an error.
func (r *GORMCartRepository) Delete(userID string) error {
	if err := r.db.Delete(&cartRecord{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete cart for user %s: %w", userID, err)
	}
	return nil
}

// MigrateCart creates the carts table. Kept next to the record type since
// cartRecord is unexported.
func MigrateCart(db *gorm.DB) error {
	return db.AutoMigrate(&cartRecord{})
}
