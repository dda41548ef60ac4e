package repositories

import (
	"khanamart/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetByUser(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status string) error
	// Orders are never deleted; cancellation is a status transition.
}
