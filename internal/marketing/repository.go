package marketing

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("marketing message not found")

type Repository interface {
	List(f Filters) ([]Message, error)
	Create(m Message) (Message, error)
	Schedule(id string, at time.Time) (Message, error)
	MarkSent(id string) (Message, error)
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	messages map[string]Message
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{messages: make(map[string]Message)}
}

func (r *InMemoryRepository) List(f Filters) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Message, 0)
	for _, m := range r.messages {
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *InMemoryRepository) Create(m Message) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = uuid.NewString()
	m.Status = StatusDraft
	m.CreatedAt = time.Now().UTC()
	r.messages[m.ID] = m
	return m, nil
}

func (r *InMemoryRepository) Schedule(id string, at time.Time) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.messages[id]
	if !ok {
		return Message{}, ErrNotFound
	}
	m.ScheduledAt = &at
	m.Status = StatusScheduled
	r.messages[id] = m
	return m, nil
}

func (r *InMemoryRepository) MarkSent(id string) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.messages[id]
	if !ok {
		return Message{}, ErrNotFound
	}
	now := time.Now().UTC()
	m.SentAt = &now
	m.Status = StatusSent
	r.messages[id] = m
	return m, nil
}
