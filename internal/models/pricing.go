package models

import "math"

// Delivery is free above this subtotal, otherwise a flat fee applies.
const (
	freeDeliveryThreshold = 500.0
	flatDeliveryFee       = 50.0
	taxRate               = 0.05
)

// PriceBreakdown is the derived pricing of a cart at checkout time.
type PriceBreakdown struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// ComputeBreakdown derives the full price breakdown from a subtotal and a
// coupon discount percentage. Tax is 5% of the post-discount amount,
// rounded to the nearest rupee; the delivery fee waiver keys off the
// pre-discount subtotal.
func ComputeBreakdown(subtotal float64, discountPercent int) PriceBreakdown {
	discount := subtotal * float64(discountPercent) / 100
	deliveryFee := flatDeliveryFee
	if subtotal > freeDeliveryThreshold {
		deliveryFee = 0
	}
	tax := math.Round((subtotal - discount) * taxRate)
	return PriceBreakdown{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Total:       subtotal - discount + deliveryFee + tax,
	}
}

// Breakdown prices the cart under its applied coupon.
func (c *CartState) Breakdown() PriceBreakdown {
	return ComputeBreakdown(c.TotalPrice, c.DiscountPercent())
}
