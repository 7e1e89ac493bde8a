package cart

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/uzmarket/bazaar-backend/internal/product"
)

var ErrNotFound = errors.New("cart item not found")

// Repository persists cart rows. Add merges into an existing row when the
// (user, product, wholesale-flag) key already exists.
type Repository interface {
	ListByUser(userID string) ([]CartItem, error)
	Add(item CartItem) (CartItem, error)
	UpdateQuantity(id string, quantity int) (CartItem, error)
	Remove(id string) error
	Clear(userID string) error
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	items    map[string]CartItem
	products product.Repository
}

func NewInMemoryRepository(products product.Repository) *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]CartItem), products: products}
}

func (r *InMemoryRepository) ListByUser(userID string) ([]CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]CartItem, 0)
	for _, it := range r.items {
		if it.UserID != userID {
			continue
		}
		if r.products != nil {
			if p, err := r.products.GetByID(it.ProductID); err == nil {
				it.Product = &p
			}
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryRepository) Add(item CartItem) (CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.items {
		if existing.UserID == item.UserID && existing.ProductID == item.ProductID && existing.IsWholesale == item.IsWholesale {
			existing.Quantity += item.Quantity
			r.items[id] = existing
			return existing, nil
		}
	}

	item.ID = uuid.NewString()
	item.CreatedAt = time.Now().UTC()
	r.items[item.ID] = item
	return item, nil
}

func (r *InMemoryRepository) UpdateQuantity(id string, quantity int) (CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return CartItem{}, ErrNotFound
	}
	it.Quantity = quantity
	r.items[id] = it
	return it, nil
}

func (r *InMemoryRepository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryRepository) Clear(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, it := range r.items {
		if it.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}
