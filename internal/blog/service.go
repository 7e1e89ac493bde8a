package blog

import (
	"errors"
	"strings"
)

var ErrMissingFields = errors.New("title, content and slug are required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(f Filters) ([]Post, error) {
	return s.repo.List(f)
}

func (s *Service) Get(id string) (Post, error) {
	return s.repo.Get(id)
}

// Create stores a draft; publishing is a separate step.
func (s *Service) Create(p Post) (Post, error) {
	p.Slug = strings.TrimSpace(strings.ToLower(p.Slug))
	if p.Title == "" || p.Content == "" || p.Slug == "" {
		return Post{}, ErrMissingFields
	}
	p.IsPublished = false
	p.PublishedAt = nil
	return s.repo.Create(p)
}

func (s *Service) Update(id string, p Post) (Post, error) {
	p.Slug = strings.TrimSpace(strings.ToLower(p.Slug))
	if p.Title == "" || p.Content == "" || p.Slug == "" {
		return Post{}, ErrMissingFields
	}
	return s.repo.Update(id, p)
}

func (s *Service) Publish(id string) (Post, error) {
	return s.repo.Publish(id)
}
