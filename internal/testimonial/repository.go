package testimonial

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	// ListActive returns active testimonials, newest first.
	ListActive() ([]Testimonial, error)
	Create(t Testimonial) (Testimonial, error)
}

type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Testimonial
}

func NewInMemoryRepository(seed []Testimonial) *InMemoryRepository {
	return &InMemoryRepository{items: append([]Testimonial(nil), seed...)}
}

func (r *InMemoryRepository) ListActive() ([]Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Testimonial, 0)
	for _, t := range r.items {
		if t.IsActive {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryRepository) Create(t Testimonial) (Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()
	r.items = append(r.items, t)
	return t, nil
}
