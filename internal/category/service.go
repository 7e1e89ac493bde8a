package category

import "errors"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *Service) Create(c Category) (Category, error) {
	if c.Name == "" || c.NameUz == "" || c.NameRu == "" || c.NameEn == "" {
		return Category{}, errors.New("all category names are required")
	}
	return s.repo.Create(c)
}
