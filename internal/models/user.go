// Package models defines the records portalauth persists.
package models

import "time"

// User is one registered account as stored in the "users" list.
//
// Password is kept verbatim; this is a mock directory with no credential
// hashing. It is omitted from JSON when empty, which is how session records
// carry a user without it.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// WithoutPassword returns a copy of u with the password cleared.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// DisplayName joins first and last name, falling back to the email.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}
