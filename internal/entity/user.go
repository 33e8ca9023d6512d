package entity

import "time"

// User is an anonymous session identity. The username is an opaque generated
// composite and the password a hashed placeholder; neither is used for
// authentication.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
