package review

import "time"

// Review is append-only product feedback. Listing joins the author's name so
// the storefront can render it without a second request.
type Review struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ProductID  string    `json:"productId"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`

	AuthorFirstName string `json:"authorFirstName,omitempty"`
	AuthorLastName  string `json:"authorLastName,omitempty"`
}
