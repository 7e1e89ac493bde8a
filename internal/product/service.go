package product

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(f Filters) ([]Product, error) {
	return s.repo.List(f)
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	p.IsActive = true
	return s.repo.Create(p)
}

func (s *Service) Update(id string, p Product) (Product, error) {
	return s.repo.Update(id, p)
}

// Deactivate soft-deletes a product; rows are never physically removed so
// order items keep pointing at real products.
func (s *Service) Deactivate(id string) (Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	p.IsActive = false
	return s.repo.Update(id, p)
}
