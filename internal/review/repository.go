package review

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	ListByProduct(productID string) ([]Review, error)
	Create(r Review) (Review, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	reviews []Review
}

func NewInMemoryRepository(seed []Review) *InMemoryRepository {
	return &InMemoryRepository{reviews: append([]Review(nil), seed...)}
}

func (repo *InMemoryRepository) ListByProduct(productID string) ([]Review, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]Review, 0)
	for _, r := range repo.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (repo *InMemoryRepository) Create(r Review) (Review, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	repo.reviews = append(repo.reviews, r)
	return r, nil
}
