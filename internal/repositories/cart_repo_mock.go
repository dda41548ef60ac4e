package repositories

import (
	"sync"

	"khanamart/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]models.CartState
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]models.CartState),
	}
}

// Load returns the user's cart, or the empty cart when none is stored.
func (r *MockCartRepository) Load(userID string) (models.CartState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.carts[userID]
	if !ok {
		return models.EmptyCart(), nil
	}
	return state, nil
}

// Save stores the cart state for the user.
func (r *MockCartRepository) Save(userID string, state models.CartState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[userID] = state
	return nil
}

// Delete removes the user's cart.
func (r *MockCartRepository) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
