package domain

import "time"

type User struct {
	ID           string
	Email        string // unique, stored case-sensitive
	FirstName    string
	LastName     string
	PasswordHash string // argon2 encoded
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins the display name fields for email templates and claims.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
