package repositories

import (
	"fmt"
	"sync"
	"time"
)

// ResetCode is a one-time password-reset code issued for an email.
type ResetCode struct {
	Email     string
	Code      string
	Verified  bool
	ExpiresAt time.Time
}

// ResetCodeRepository defines the interface for password-reset codes.
// Codes are short-lived, so the only implementation is in-memory.
type ResetCodeRepository interface {
	Put(code ResetCode) error
	Get(email string) (*ResetCode, error)
	Delete(email string) error
}

// MemoryResetCodeRepository holds reset codes in memory, one per email;
// issuing a new code replaces any outstanding one.
type MemoryResetCodeRepository struct {
	codes map[string]ResetCode
	mu    sync.RWMutex
}

// NewMemoryResetCodeRepository creates a new instance of
// MemoryResetCodeRepository.
func NewMemoryResetCodeRepository() *MemoryResetCodeRepository {
	return &MemoryResetCodeRepository{
		codes: make(map[string]ResetCode),
	}
}

// Put stores a reset code for the email.
func (r *MemoryResetCodeRepository) Put(code ResetCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codes[code.Email] = code
	return nil
}

// Get returns the outstanding reset code for the email.
func (r *MemoryResetCodeRepository) Get(email string) (*ResetCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	code, ok := r.codes[email]
	if !ok {
		return nil, fmt.Errorf("no reset code for %s", email)
	}
	return &code, nil
}

// Delete consumes the reset code for the email.
func (r *MemoryResetCodeRepository) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.codes, email)
	return nil
}
