package admin

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyAdmin = errors.New("user already has an admin role")

type Repository interface {
	// IsAdmin reports whether the user has an active admin row.
	IsAdmin(userID string) (bool, error)
	Create(a AdminUser) (AdminUser, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	admins map[string]AdminUser
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{admins: make(map[string]AdminUser)}
}

func (r *InMemoryRepository) IsAdmin(userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.admins[userID]
	return ok && a.IsActive, nil
}

func (r *InMemoryRepository) Create(a AdminUser) (AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.admins[a.UserID]; ok {
		return AdminUser{}, ErrAlreadyAdmin
	}
	a.ID = uuid.NewString()
	a.IsActive = true
	a.CreatedAt = time.Now().UTC()
	r.admins[a.UserID] = a
	return a, nil
}
