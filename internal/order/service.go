package order

import "errors"

var (
	ErrEmptyOrder    = errors.New("order must contain at least one item")
	ErrInvalidStatus = errors.New("unknown order status")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create totals the item price snapshots; the client-sent total is ignored.
func (s *Service) Create(o Order, items []OrderItem) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrEmptyOrder
	}
	var total float64
	for _, it := range items {
		if it.ProductID == "" || it.Quantity < 1 || it.Price < 0 {
			return Order{}, ErrEmptyOrder
		}
		total += it.Price * float64(it.Quantity)
	}
	o.TotalAmount = total
	return s.repo.Create(o, items)
}

func (s *Service) Get(id string) (Order, error) {
	return s.repo.Get(id)
}

func (s *Service) List(f Filters) ([]Order, error) {
	return s.repo.List(f)
}

func (s *Service) UpdateStatus(id, status string) (Order, error) {
	if !ValidStatus(status) {
		return Order{}, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(id, status)
}
