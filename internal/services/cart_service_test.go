package services_test

import (
	"testing"

	"khanamart/internal/models"
	"khanamart/internal/repositories"
	"khanamart/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartServiceForTest(t *testing.T) *services.CartService {
	t.Helper()
	productRepo := repositories.NewMockProductRepository()
	assert.NoError(t, productRepo.Create(&models.Product{
		ID: "veg_1", Type: models.ProductTypeGrocery, Title: "Fresh Tomatoes",
		Price: 45, Category: "vegetables", FoodType: models.FoodTypeVeg,
		InStock: true, SameDay: true,
	}))
	assert.NoError(t, productRepo.Create(&models.Product{
		ID: "dairy_1", Type: models.ProductTypeGrocery, Title: "Fresh Milk (1L)",
		Price: 55, Category: "dairy", FoodType: models.FoodTypeVeg,
		InStock: true, SameDay: true,
	}))
	assert.NoError(t, productRepo.Create(&models.Product{
		ID: "fruit_3", Type: models.ProductTypeGrocery, Title: "Oranges (1kg)",
		Price: 65, Category: "fruits", FoodType: models.FoodTypeVeg,
		InStock: false,
	}))
	return services.NewCartService(repositories.NewMockCartRepository(), productRepo)
}

func TestCartService_AddItem(t *testing.T) {
	cartService := newCartServiceForTest(t)

	state, err := cartService.AddItem("user-1", "veg_1", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, state.TotalItems)
	assert.Equal(t, 90.0, state.TotalPrice)

	// The cart survives a reload through the repository.
	state, err = cartService.Get("user-1")
	assert.NoError(t, err)
	assert.Len(t, state.Items, 1)
	assert.Equal(t, "Fresh Tomatoes", state.Items[0].Title)

	// Each user has an independent cart.
	state, err = cartService.Get("user-2")
	assert.NoError(t, err)
	assert.Empty(t, state.Items)
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	cartService := newCartServiceForTest(t)

	_, err := cartService.AddItem("user-1", "veg_1", 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	_, err = cartService.AddItem("user-1", "veg_1", -1)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	_, err = cartService.AddItem("user-1", "fruit_3", 1)
	assert.ErrorIs(t, err, services.ErrOutOfStock)

	_, err = cartService.AddItem("user-1", "nonexistent", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	// None of the rejected operations touched the cart.
	state, err := cartService.Get("user-1")
	assert.NoError(t, err)
	assert.Empty(t, state.Items)
}

func TestCartService_UpdateAndRemove(t *testing.T) {
	cartService := newCartServiceForTest(t)

	_, err := cartService.AddItem("user-1", "veg_1", 2)
	assert.NoError(t, err)
	_, err = cartService.AddItem("user-1", "dairy_1", 1)
	assert.NoError(t, err)

	state, err := cartService.UpdateQuantity("user-1", "veg_1", 5)
	assert.NoError(t, err)
	assert.Equal(t, 6, state.TotalItems)

	state, err = cartService.UpdateQuantity("user-1", "veg_1", 0)
	assert.NoError(t, err)
	assert.Len(t, state.Items, 1)

	state, err = cartService.RemoveItem("user-1", "dairy_1")
	assert.NoError(t, err)
	assert.Empty(t, state.Items)
}

func TestCartService_Coupons(t *testing.T) {
	cartService := newCartServiceForTest(t)

	_, err := cartService.AddItem("user-1", "veg_1", 10)
	assert.NoError(t, err)

	state, err := cartService.ApplyCoupon("user-1", "save10")
	assert.NoError(t, err)
	assert.NotNil(t, state.Coupon)
	assert.Equal(t, "SAVE10", state.Coupon.Code)

	_, err = cartService.ApplyCoupon("user-1", "BOGUS")
	assert.ErrorIs(t, err, services.ErrUnknownCoupon)

	// The rejected code did not displace the applied one.
	state, err = cartService.Get("user-1")
	assert.NoError(t, err)
	assert.Equal(t, "SAVE10", state.Coupon.Code)

	state, err = cartService.RemoveCoupon("user-1")
	assert.NoError(t, err)
	assert.Nil(t, state.Coupon)
}

func TestCartService_Summary(t *testing.T) {
	cartService := newCartServiceForTest(t)

	// 10 x 45 = 450 subtotal, SAVE10 applied.
	_, err := cartService.AddItem("user-1", "veg_1", 10)
	assert.NoError(t, err)
	_, err = cartService.ApplyCoupon("user-1", "SAVE10")
	assert.NoError(t, err)

	state, pricing, err := cartService.Summary("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 450.0, state.TotalPrice)
	assert.Equal(t, 45.0, pricing.Discount)
	assert.Equal(t, 50.0, pricing.DeliveryFee)
	assert.Equal(t, 20.0, pricing.Tax)
	assert.Equal(t, 475.0, pricing.Total)
}

func TestCartService_Clear(t *testing.T) {
	cartService := newCartServiceForTest(t)

	_, err := cartService.AddItem("user-1", "veg_1", 2)
	assert.NoError(t, err)

	assert.NoError(t, cartService.Clear("user-1"))

	state, err := cartService.Get("user-1")
	assert.NoError(t, err)
	assert.Empty(t, state.Items)
	assert.Equal(t, 0.0, state.TotalPrice)
}
