package models

import (
	"strings"
	"time"
)

// CartItem is one line of a cart: a product snapshot plus a quantity.
// Quantity is always >= 1 for an item present in the cart; the state
// transitions below drop items whose quantity reaches zero.
type CartItem struct {
	ProductID string    `json:"product_id"`
	Title     string    `json:"title"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// AppliedCoupon is a coupon attached to the cart.
type AppliedCoupon struct {
	Code    string `json:"code"`
	Percent int    `json:"percent"`
}

// CartState is the full state of a user's cart: items in insertion order
// plus derived totals. TotalItems and TotalPrice are pure functions of
// Items and are recomputed by every transition; nothing else writes them.
type CartState struct {
	Items      []CartItem     `json:"items"`
	TotalItems int            `json:"totalItems"`
	TotalPrice float64        `json:"totalPrice"`
	Coupon     *AppliedCoupon `json:"coupon,omitempty"`
}

// EmptyCart returns the canonical empty cart state.
func EmptyCart() CartState {
	return CartState{Items: []CartItem{}}
}

// recalcTotals is the single place cart totals are computed.
func (c *CartState) recalcTotals() {
	totalItems := 0
	totalPrice := 0.0
	for _, item := range c.Items {
		totalItems += item.Quantity
		totalPrice += item.UnitPrice * float64(item.Quantity)
	}
	c.TotalItems = totalItems
	c.TotalPrice = totalPrice
}

// AddItem merges the quantity into an existing line for the product, or
// appends a new line stamped with now. Callers are expected to pass a
// positive quantity; the service boundary enforces that.
func (c *CartState) AddItem(product Product, quantity int, now time.Time) {
	for i := range c.Items {
		if c.Items[i].ProductID == product.ID {
			c.Items[i].Quantity += quantity
			c.recalcTotals()
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: product.ID,
		Title:     product.Title,
		UnitPrice: product.Price,
		Quantity:  quantity,
		AddedAt:   now,
	})
	c.recalcTotals()
}

// RemoveItem drops the line for the product; absent products are a no-op.
func (c *CartState) RemoveItem(productID string) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
	c.recalcTotals()
}

// UpdateQuantity sets the quantity for the product, clamping to a minimum
// of zero. A resulting quantity of zero removes the line entirely.
func (c *CartState) UpdateQuantity(productID string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID == productID {
			item.Quantity = quantity
		}
		if item.Quantity > 0 {
			items = append(items, item)
		}
	}
	c.Items = items
	c.recalcTotals()
}

// Clear resets to the empty state, dropping any applied coupon.
func (c *CartState) Clear() {
	*c = EmptyCart()
}

// Item returns the cart line for the product, if present.
func (c *CartState) Item(productID string) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}

// DiscountPercent is the percentage granted by the applied coupon, zero
// when no coupon is applied.
func (c *CartState) DiscountPercent() int {
	if c.Coupon == nil {
		return 0
	}
	return c.Coupon.Percent
}

// couponTable is the fixed set of accepted coupon codes.
var couponTable = map[string]int{
	"SAVE10": 10,
	"SAVE20": 20,
}

// LookupCoupon resolves a code (case-insensitively) against the fixed
// coupon table.
func LookupCoupon(code string) (AppliedCoupon, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	percent, ok := couponTable[normalized]
	if !ok {
		return AppliedCoupon{}, false
	}
	return AppliedCoupon{Code: normalized, Percent: percent}, true
}
