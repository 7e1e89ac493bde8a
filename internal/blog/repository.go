package blog

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("blog post not found")
	ErrSlugExists = errors.New("slug already in use")
)

type Repository interface {
	List(f Filters) ([]Post, error)
	Get(id string) (Post, error)
	Create(p Post) (Post, error)
	Update(id string, p Post) (Post, error)
	Publish(id string) (Post, error)
}

type InMemoryRepository struct {
	mu    sync.RWMutex
	posts map[string]Post
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{posts: make(map[string]Post)}
}

func (r *InMemoryRepository) List(f Filters) ([]Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Post, 0)
	for _, p := range r.posts {
		if f.PublishedOnly && !p.IsPublished {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []Post{}, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *InMemoryRepository) Get(id string) (Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return Post{}, ErrNotFound
	}
	return p, nil
}

func (r *InMemoryRepository) Create(p Post) (Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.posts {
		if existing.Slug == p.Slug {
			return Post{}, ErrSlugExists
		}
	}
	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.posts[p.ID] = p
	return p, nil
}

func (r *InMemoryRepository) Update(id string, p Post) (Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.posts[id]
	if !ok {
		return Post{}, ErrNotFound
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.PublishedAt = existing.PublishedAt
	p.IsPublished = existing.IsPublished
	p.UpdatedAt = time.Now().UTC()
	r.posts[id] = p
	return p, nil
}

func (r *InMemoryRepository) Publish(id string) (Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return Post{}, ErrNotFound
	}
	now := time.Now().UTC()
	p.IsPublished = true
	p.PublishedAt = &now
	p.UpdatedAt = now
	r.posts[id] = p
	return p, nil
}
