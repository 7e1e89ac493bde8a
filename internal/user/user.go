package user

import "time"

// User is an identity record. It is created on first sign-up and kept in sync
// on every subsequent login via upsert.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Password        string    `json:"password,omitempty"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func sanitizeUser(u User) User {
	u.Password = ""
	return u
}
