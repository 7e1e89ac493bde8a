package product

import (
	"time"

	"github.com/uzmarket/bazaar-backend/internal/locale"
	"github.com/uzmarket/bazaar-backend/internal/pricing"
)

// Product is a storefront item sold at both retail and wholesale prices.
// Name and description carry all three storefront languages plus a
// locale-neutral base value.
type Product struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	NameUz               string    `json:"nameUz"`
	NameRu               string    `json:"nameRu"`
	NameEn               string    `json:"nameEn"`
	Description          *string   `json:"description,omitempty"`
	DescriptionUz        *string   `json:"descriptionUz,omitempty"`
	DescriptionRu        *string   `json:"descriptionRu,omitempty"`
	DescriptionEn        *string   `json:"descriptionEn,omitempty"`
	CategoryID           string    `json:"categoryId"`
	RetailPrice          float64   `json:"retailPrice"`
	WholesalePrice       float64   `json:"wholesalePrice"`
	WholesaleMinQuantity int       `json:"wholesaleMinQuantity"`
	StockQuantity        int       `json:"stockQuantity"`
	Images               []string  `json:"images"`
	VideoURL             *string   `json:"videoUrl,omitempty"`
	Rating               float64   `json:"rating"`
	ReviewCount          int       `json:"reviewCount"`
	IsActive             bool      `json:"isActive"`
	IsFeatured           bool      `json:"isFeatured"`
	IsNew                bool      `json:"isNew"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`

	// Display fields are resolved per request language on public endpoints.
	DisplayName        string `json:"displayName,omitempty"`
	DisplayDescription string `json:"displayDescription,omitempty"`
	DiscountPercent    int    `json:"discountPercent"`
}

// Localize fills the display fields for the requested language and computes
// the wholesale discount badge.
func (p *Product) Localize(lang locale.Lang) {
	p.DisplayName = locale.Pick(lang, p.Name, p.NameUz, p.NameRu, p.NameEn)
	p.DisplayDescription = locale.PickPtr(lang, p.Description, p.DescriptionUz, p.DescriptionRu, p.DescriptionEn)
	p.DiscountPercent = pricing.DiscountPercent(p.RetailPrice, p.WholesalePrice)
}

// Filters narrows List results. Active products are always implied.
// Limit <= 0 means unbounded; the HTTP layer applies its own default.
type Filters struct {
	CategoryID string
	Search     string
	Featured   bool
	IsNew      bool
	Limit      int
	Offset     int
}
