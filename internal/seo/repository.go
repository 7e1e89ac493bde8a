package seo

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	// Get returns the zero value when no settings have been saved yet.
	Get() (Settings, error)
	Upsert(s Settings) (Settings, error)
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	settings *Settings
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Get() (Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return Settings{}, nil
	}
	return *r.settings, nil
}

func (r *InMemoryRepository) Upsert(s Settings) (Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.settings == nil {
		s.ID = uuid.NewString()
	} else {
		s.ID = r.settings.ID
	}
	s.UpdatedAt = time.Now().UTC()
	r.settings = &s
	return s, nil
}
