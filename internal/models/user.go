package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a KhanaMart account.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Phone      string `json:"phone" gorm:"type:varchar(10)" validate:"omitempty,len=10,numeric"`
	Password   string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	gorm.Model `json:"-"`
}

// UserSettings holds per-account notification preferences.
type UserSettings struct {
	UserID             string `json:"user_id" gorm:"primaryKey;type:varchar(36)"`
	EmailNotifications bool   `json:"email_notifications"`
	SMSNotifications   bool   `json:"sms_notifications"`
	PromotionalOffers  bool   `json:"promotional_offers"`
	OrderUpdates       bool   `json:"order_updates"`
}

// DefaultSettings is what a fresh account starts with: transactional
// notifications on, marketing off.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID:             userID,
		EmailNotifications: true,
		SMSNotifications:   true,
		OrderUpdates:       true,
	}
}

// Favorite marks a product as saved by a user.
type Favorite struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
}
