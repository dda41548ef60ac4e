package models

import "time"

// PaymentMethod is the selected payment option. Selection only: no real
// payment integration sits behind any of these.
type PaymentMethod string

const (
	PaymentUPI        PaymentMethod = "upi"
	PaymentCard       PaymentMethod = "card"
	PaymentNetBanking PaymentMethod = "netbanking"
	PaymentWallet     PaymentMethod = "wallet"
	PaymentCOD        PaymentMethod = "cod"
)

// ValidPaymentMethod reports whether m is one of the fixed options.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentUPI, PaymentCard, PaymentNetBanking, PaymentWallet, PaymentCOD:
		return true
	}
	return false
}

// OrderItem is a single line within an order, with the unit price frozen
// at the time the order was placed.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order statuses.
const (
	OrderStatusPending        = "pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// Order is a placed order. IDs follow the KM<unix-millis> convention.
type Order struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string          `json:"user_id" gorm:"index;type:varchar(36)"`
	Items         []OrderItem     `json:"items" gorm:"serializer:json"`
	Address       DeliveryAddress `json:"address" gorm:"serializer:json"`
	PaymentMethod PaymentMethod   `json:"payment_method" gorm:"type:varchar(20)"`
	Pricing       PriceBreakdown  `json:"pricing" gorm:"embedded;embeddedPrefix:pricing_"`
	Status        string          `json:"status" gorm:"type:varchar(20)"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
