package services

import (
	"errors"
	"fmt"

	"khanamart/internal/models"
	"khanamart/internal/repositories"
)

// ErrNotOwner reports an attempt to read another user's order.
var ErrNotOwner = errors.New("order belongs to another user")

// OrderService handles business logic related to placed orders. Orders
// are created only by the checkout confirmation; this service covers
// history and status tracking.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// GetOrdersForUser retrieves the user's order history, newest first.
func (s *OrderService) GetOrdersForUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetOrderByID retrieves a single order, enforcing ownership.
func (s *OrderService) GetOrderByID(userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOwner
	}
	return order, nil
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{
		models.OrderStatusPending:        true,
		models.OrderStatusConfirmed:      true,
		models.OrderStatusOutForDelivery: true,
		models.OrderStatusDelivered:      true,
		models.OrderStatusCancelled:      true,
	}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}
