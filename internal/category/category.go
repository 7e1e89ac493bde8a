package category

import (
	"time"

	"github.com/uzmarket/bazaar-backend/internal/locale"
)

// Category groups products. Names carry all three storefront languages plus a
// locale-neutral base. The parent reference forms a one-level tree.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NameUz    string    `json:"nameUz"`
	NameRu    string    `json:"nameRu"`
	NameEn    string    `json:"nameEn"`
	Icon      *string   `json:"icon,omitempty"`
	ParentID  *string   `json:"parentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// DisplayName is resolved per request language on public endpoints.
	DisplayName string `json:"displayName,omitempty"`
}

// Localize fills the display field for the requested language.
func (c *Category) Localize(lang locale.Lang) {
	c.DisplayName = locale.Pick(lang, c.Name, c.NameUz, c.NameRu, c.NameEn)
}
