package models

import "time"

// DeliveryAddress is the structured delivery address collected by the
// checkout wizard. Phone and Pincode carry exact digit-count constraints.
type DeliveryAddress struct {
	FullName       string `json:"full_name" validate:"required,min=2,max=100"`
	Phone          string `json:"phone" validate:"required,len=10,numeric"`
	AlternatePhone string `json:"alternate_phone,omitempty" validate:"omitempty,len=10,numeric"`
	House          string `json:"house" validate:"required,max=100"`
	Area           string `json:"area" validate:"required,max=100"`
	Landmark       string `json:"landmark,omitempty" validate:"omitempty,max=100"`
	City           string `json:"city" validate:"required,max=50"`
	Pincode        string `json:"pincode" validate:"required,len=6,numeric"`
	Type           string `json:"type" validate:"required,oneof=home work"`
}

// SavedAddress is a delivery address kept on the account for reuse.
type SavedAddress struct {
	ID              string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string `json:"user_id" gorm:"index;type:varchar(36)"`
	DeliveryAddress `gorm:"embedded"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
