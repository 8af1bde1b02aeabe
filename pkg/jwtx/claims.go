package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens.
const DefaultAccessTokenTTL = time.Hour

// Authentication Method Reference values recorded in the "amr" claim.
const (
	AMRPassword = "pwd" // password-based authentication
	AMROTP      = "otp" // one-time passcode delivered by email
)

var (
	ErrIssuer  = errors.New("jwtx: unexpected issuer")
	ErrExpired = errors.New("jwtx: token expired")
	ErrNotYet  = errors.New("jwtx: token not yet valid")
)

// Claims are the access-token claims used across the service. Keep changes
// additive to preserve compatibility for downstream verifiers.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user.
	Email string `json:"email,omitempty"`

	// Name is the display name for the user.
	Name string `json:"name,omitempty"`

	// Authentication Methods Reference, e.g. ["pwd"] or ["otp"].
	AMR []string `json:"amr,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for a bearer access token.
func NewAccessClaims(
	subject, email, name string,
	amr []string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email: email,
		Name:  name,
		AMR:   amr,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYet
	}

	return nil
}
