package cart

import (
	"time"

	"github.com/uzmarket/bazaar-backend/internal/pricing"
	"github.com/uzmarket/bazaar-backend/internal/product"
)

// CartItem is one row of a user's cart. A product appears at most once per
// pricing mode: retail and wholesale lines of the same product are distinct rows.
type CartItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ProductID   string    `json:"productId"`
	Quantity    int       `json:"quantity"`
	IsWholesale bool      `json:"isWholesale"`
	CreatedAt   time.Time `json:"createdAt"`

	Product *product.Product `json:"product,omitempty"`
}

// Cart is the joined view returned to the client: items with their products
// plus the computed total.
type Cart struct {
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
}

func buildCart(items []CartItem) Cart {
	lines := make([]pricing.Line, 0, len(items))
	for _, it := range items {
		if it.Product == nil {
			continue
		}
		lines = append(lines, pricing.Line{
			RetailPrice:    it.Product.RetailPrice,
			WholesalePrice: it.Product.WholesalePrice,
			Quantity:       it.Quantity,
			IsWholesale:    it.IsWholesale,
		})
	}
	if items == nil {
		items = []CartItem{}
	}
	return Cart{Items: items, TotalAmount: pricing.Total(lines)}
}
