package testimonial

import "errors"

var ErrMissingContent = errors.New("name and content are required in all languages")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListActive() ([]Testimonial, error) {
	return s.repo.ListActive()
}

func (s *Service) Create(t Testimonial) (Testimonial, error) {
	if t.Name == "" || t.NameUz == "" || t.NameRu == "" || t.NameEn == "" ||
		t.Content == "" || t.ContentUz == "" || t.ContentRu == "" || t.ContentEn == "" {
		return Testimonial{}, ErrMissingContent
	}
	if t.Rating < 1 || t.Rating > 5 {
		t.Rating = 5
	}
	t.IsActive = true
	return s.repo.Create(t)
}
