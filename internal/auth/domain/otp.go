package domain

import "time"

// OTPCredential is the single emailed passcode outstanding for a user.
// UserID is both primary key and foreign key, so the schema itself enforces
// at most one live credential per user: issuing a replacement overwrites the
// row, and a successful verification deletes it.
type OTPCredential struct {
	UserID    string
	Code      string // fixed-length numeric string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the credential is past its expiry at the given
// instant. Expired rows are treated as absent even before cleanup removes
// them.
func (c OTPCredential) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
