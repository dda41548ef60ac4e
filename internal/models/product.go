package models

import "time"

// ProductType distinguishes plain groceries from tiffin plans and combos.
type ProductType string

const (
	ProductTypeGrocery ProductType = "grocery"
	ProductTypeTiffin  ProductType = "tiffin"
	ProductTypeCombo   ProductType = "combo"
)

// FoodType is the dietary classification shown on every product card.
type FoodType string

const (
	FoodTypeVeg    FoodType = "veg"
	FoodTypeNonVeg FoodType = "non_veg"
	FoodTypeEgg    FoodType = "egg"
)

// Product represents a purchasable catalog entry: a grocery item, a tiffin
// plan, or a bundle. Prices are whole rupees.
type Product struct {
	ID            string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty"`
	Type          ProductType `json:"type" validate:"required,oneof=grocery tiffin combo"`
	Title         string      `json:"title" validate:"required,min=3,max=100"`
	Description   string      `json:"description" validate:"omitempty,max=500"`
	Price         float64     `json:"price" validate:"required,gt=0"`
	OriginalPrice float64     `json:"original_price,omitempty" validate:"omitempty,gtefield=Price"`
	Currency      string      `json:"currency"`
	Image         string      `json:"image" validate:"omitempty,url"`
	Category      string      `json:"category" validate:"required"`
	FoodType      FoodType    `json:"food_type" validate:"required,oneof=veg non_veg egg"`
	Rating        float64     `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int         `json:"reviews" validate:"gte=0"`
	Badge         string      `json:"badge,omitempty" validate:"omitempty,oneof=fresh best_seller trending new"`
	InStock       bool        `json:"in_stock"`
	SameDay       bool        `json:"same_day"`
	Subscription  bool        `json:"subscription_available"`

	// Tiffin-specific fields, empty for groceries.
	MealType string `json:"meal_type,omitempty" validate:"omitempty,oneof=breakfast lunch dinner both"`
	Period   string `json:"period,omitempty" validate:"omitempty,oneof=daily weekly monthly"`
	Servings int    `json:"servings,omitempty" validate:"gte=0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
