package repositories

import "khanamart/internal/models"

// CartRepository defines the interface for cart persistence. Every cart
// mutation is written through so the cart survives restarts; a missing or
// unreadable stored cart loads as the empty state rather than failing.
type CartRepository interface {
	Load(userID string) (models.CartState, error)
	Save(userID string, state models.CartState) error
	Delete(userID string) error
}
