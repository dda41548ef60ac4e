package repositories

import (
	"fmt"
	"sync"

	"khanamart/internal/models"
)

// CheckoutSessionRepository defines the interface for in-progress checkout
// sessions. Sessions are ephemeral: they exist only between starting the
// wizard and order confirmation, so the only implementation is in-memory.
type CheckoutSessionRepository interface {
	Get(userID string) (*models.CheckoutSession, error)
	Save(session *models.CheckoutSession) error
	Delete(userID string) error
}

// MemoryCheckoutSessionRepository holds checkout sessions in memory, one
// per user.
type MemoryCheckoutSessionRepository struct {
	sessions map[string]models.CheckoutSession
	mu       sync.RWMutex
}

// NewMemoryCheckoutSessionRepository creates a new instance of
// MemoryCheckoutSessionRepository.
func NewMemoryCheckoutSessionRepository() *MemoryCheckoutSessionRepository {
	return &MemoryCheckoutSessionRepository{
		sessions: make(map[string]models.CheckoutSession),
	}
}

// Get returns the user's current checkout session.
func (r *MemoryCheckoutSessionRepository) Get(userID string) (*models.CheckoutSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[userID]
	if !ok {
		return nil, fmt.Errorf("no checkout session for user %s", userID)
	}
	return &session, nil
}

// Save stores the session, replacing any previous one for the user.
func (r *MemoryCheckoutSessionRepository) Save(session *models.CheckoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.UserID] = *session
	return nil
}

// Delete removes the user's checkout session.
func (r *MemoryCheckoutSessionRepository) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, userID)
	return nil
}
