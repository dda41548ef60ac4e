package services_test

import (
	"testing"
	"time"

	"khanamart/internal/models"
	"khanamart/internal/repositories"
	"khanamart/internal/services"

	"github.com/stretchr/testify/assert"
)

func seedOrder(t *testing.T, repo *repositories.MockOrderRepository, id, userID string) {
	t.Helper()
	assert.NoError(t, repo.Create(&models.Order{
		ID:     id,
		UserID: userID,
		Items: []models.OrderItem{
			{ProductID: "veg_1", Title: "Fresh Tomatoes", Quantity: 2, Price: 45},
		},
		PaymentMethod: models.PaymentUPI,
		Pricing:       models.ComputeBreakdown(90, 0),
		Status:        models.OrderStatusPending,
	}))
}

func TestOrderService_GetOrdersForUser(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo)

	seedOrder(t, repo, "KM100", "user-1")
	time.Sleep(2 * time.Millisecond)
	seedOrder(t, repo, "KM200", "user-1")
	seedOrder(t, repo, "KM300", "user-2")

	orders, err := orderService.GetOrdersForUser("user-1")
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	// Newest first.
	assert.Equal(t, "KM200", orders[0].ID)
	assert.Equal(t, "KM100", orders[1].ID)

	orders, err = orderService.GetOrdersForUser("user-3")
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo)
	seedOrder(t, repo, "KM100", "user-1")

	order, err := orderService.GetOrderByID("user-1", "KM100")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", order.UserID)

	// Another user's order is not readable.
	_, err = orderService.GetOrderByID("user-2", "KM100")
	assert.ErrorIs(t, err, services.ErrNotOwner)

	_, err = orderService.GetOrderByID("user-1", "KM999")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo)
	seedOrder(t, repo, "KM100", "user-1")

	assert.NoError(t, orderService.UpdateOrderStatus("KM100", models.OrderStatusOutForDelivery))
	order, err := repo.GetByID("KM100")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusOutForDelivery, order.Status)

	err = orderService.UpdateOrderStatus("KM100", "teleported")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")

	err = orderService.UpdateOrderStatus("KM999", models.OrderStatusConfirmed)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
