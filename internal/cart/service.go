package cart

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetCart(userID string) (Cart, error) {
	items, err := s.repo.ListByUser(userID)
	if err != nil {
		return Cart{}, err
	}
	return buildCart(items), nil
}

// Add merges quantity into an existing line when the user already carries the
// product in the same pricing mode.
func (s *Service) Add(userID, productID string, quantity int, isWholesale bool) (CartItem, error) {
	if quantity < 1 {
		return CartItem{}, ErrInvalidQuantity
	}
	return s.repo.Add(CartItem{
		UserID:      userID,
		ProductID:   productID,
		Quantity:    quantity,
		IsWholesale: isWholesale,
	})
}

func (s *Service) UpdateQuantity(id string, quantity int) (CartItem, error) {
	if quantity < 1 {
		return CartItem{}, ErrInvalidQuantity
	}
	return s.repo.UpdateQuantity(id, quantity)
}

func (s *Service) Remove(id string) error {
	return s.repo.Remove(id)
}

func (s *Service) Clear(userID string) error {
	return s.repo.Clear(userID)
}
