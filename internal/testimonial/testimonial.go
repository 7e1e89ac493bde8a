package testimonial

import (
	"time"

	"github.com/uzmarket/bazaar-backend/internal/locale"
)

type Testimonial struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	NameUz     string    `json:"nameUz"`
	NameRu     string    `json:"nameRu"`
	NameEn     string    `json:"nameEn"`
	Position   *string   `json:"position"`
	PositionUz *string   `json:"positionUz"`
	PositionRu *string   `json:"positionRu"`
	PositionEn *string   `json:"positionEn"`
	Content    string    `json:"content"`
	ContentUz  string    `json:"contentUz"`
	ContentRu  string    `json:"contentRu"`
	ContentEn  string    `json:"contentEn"`
	Rating     int       `json:"rating"`
	AvatarURL  *string   `json:"avatarUrl"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`

	DisplayName     string `json:"displayName,omitempty"`
	DisplayPosition string `json:"displayPosition,omitempty"`
	DisplayContent  string `json:"displayContent,omitempty"`
}

func (t *Testimonial) Localize(lang locale.Lang) {
	t.DisplayName = locale.Pick(lang, t.Name, t.NameUz, t.NameRu, t.NameEn)
	t.DisplayPosition = locale.PickPtr(lang, t.Position, t.PositionUz, t.PositionRu, t.PositionEn)
	t.DisplayContent = locale.Pick(lang, t.Content, t.ContentUz, t.ContentRu, t.ContentEn)
}
