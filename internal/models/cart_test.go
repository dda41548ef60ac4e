package models_test

import (
	"testing"
	"time"

	"khanamart/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
)

// fakeProduct builds a catalog entry with randomized display fields and a
// fixed price so totals stay predictable.
func fakeProduct(faker *gofakeit.Faker, id string, price float64) models.Product {
	return models.Product{
		ID:       id,
		Type:     models.ProductTypeGrocery,
		Title:    faker.ProductName(),
		Price:    price,
		Category: "vegetables",
		FoodType: models.FoodTypeVeg,
		InStock:  true,
	}
}

func TestCartState_AddItem(t *testing.T) {
	faker := gofakeit.New(42)
	now := time.Now()

	cart := models.EmptyCart()
	tomato := fakeProduct(faker, "veg_1", 45)
	milk := fakeProduct(faker, "dairy_1", 55)

	cart.AddItem(tomato, 2, now)
	cart.AddItem(milk, 1, now)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.TotalItems)
	assert.Equal(t, 145.0, cart.TotalPrice)

	// Adding the same product again merges into the existing line.
	cart.AddItem(tomato, 3, now.Add(time.Minute))
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 6, cart.TotalItems)
	assert.Equal(t, 280.0, cart.TotalPrice)

	line, ok := cart.Item("veg_1")
	assert.True(t, ok)
	assert.Equal(t, 5, line.Quantity)
	assert.Equal(t, now, line.AddedAt) // first AddedAt survives the merge
}

func TestCartState_UpdateQuantity(t *testing.T) {
	faker := gofakeit.New(42)
	now := time.Now()

	cart := models.EmptyCart()
	cart.AddItem(fakeProduct(faker, "veg_1", 45), 2, now)
	cart.AddItem(fakeProduct(faker, "dairy_1", 55), 1, now)

	cart.UpdateQuantity("veg_1", 4)
	line, ok := cart.Item("veg_1")
	assert.True(t, ok)
	assert.Equal(t, 4, line.Quantity)
	assert.Equal(t, 5, cart.TotalItems)
	assert.Equal(t, 235.0, cart.TotalPrice)

	// A quantity of zero removes the line.
	cart.UpdateQuantity("veg_1", 0)
	_, ok = cart.Item("veg_1")
	assert.False(t, ok)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.TotalItems)
	assert.Equal(t, 55.0, cart.TotalPrice)

	// Negative input clamps to zero and also removes the line.
	cart.UpdateQuantity("dairy_1", -3)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
	assert.Equal(t, 0.0, cart.TotalPrice)

	// Updating an absent product is a no-op.
	cart.UpdateQuantity("nonexistent", 2)
	assert.Empty(t, cart.Items)
}

func TestCartState_RemoveItem(t *testing.T) {
	faker := gofakeit.New(42)
	now := time.Now()

	cart := models.EmptyCart()
	cart.AddItem(fakeProduct(faker, "veg_1", 45), 2, now)
	cart.AddItem(fakeProduct(faker, "fruit_1", 120), 1, now)

	cart.RemoveItem("veg_1")
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "fruit_1", cart.Items[0].ProductID)
	assert.Equal(t, 120.0, cart.TotalPrice)

	cart.RemoveItem("missing")
	assert.Len(t, cart.Items, 1)
}

func TestCartState_Clear(t *testing.T) {
	faker := gofakeit.New(42)

	cart := models.EmptyCart()
	cart.AddItem(fakeProduct(faker, "veg_1", 45), 2, time.Now())
	coupon, _ := models.LookupCoupon("SAVE10")
	cart.Coupon = &coupon

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
	assert.Equal(t, 0.0, cart.TotalPrice)
	assert.Nil(t, cart.Coupon)
}

func TestLookupCoupon(t *testing.T) {
	coupon, ok := models.LookupCoupon("SAVE10")
	assert.True(t, ok)
	assert.Equal(t, models.AppliedCoupon{Code: "SAVE10", Percent: 10}, coupon)

	// Codes are normalized before lookup.
	coupon, ok = models.LookupCoupon("  save20 ")
	assert.True(t, ok)
	assert.Equal(t, models.AppliedCoupon{Code: "SAVE20", Percent: 20}, coupon)

	_, ok = models.LookupCoupon("SAVE50")
	assert.False(t, ok)
	_, ok = models.LookupCoupon("")
	assert.False(t, ok)
}

func TestCartState_DiscountPercent(t *testing.T) {
	cart := models.EmptyCart()
	assert.Equal(t, 0, cart.DiscountPercent())

	coupon, _ := models.LookupCoupon("SAVE20")
	cart.Coupon = &coupon
	assert.Equal(t, 20, cart.DiscountPercent())
}
