package review

import "errors"

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByProduct(productID string) ([]Review, error) {
	return s.repo.ListByProduct(productID)
}

func (s *Service) Create(r Review) (Review, error) {
	if r.Rating < 1 || r.Rating > 5 {
		return Review{}, ErrInvalidRating
	}
	return s.repo.Create(r)
}
