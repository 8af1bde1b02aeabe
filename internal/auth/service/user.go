package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/longevlabs/longev-auth/internal/auth/domain"
	"github.com/longevlabs/longev-auth/internal/auth/store"
	"github.com/longevlabs/longev-auth/pkg/cryptox"
	"github.com/longevlabs/longev-auth/pkg/idx"
)

// Password length bounds enforced at signup.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 32
)

var ErrEmailExists = errors.New("email_exists")

// ValidationError carries a user-facing message for a rejected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UserService covers signup and profile management.
type UserService struct {
	Store store.Store
}

// Signup registers a new active user. The email must parse as an address
// and the password must fall within the length bounds.
func (s *UserService) Signup(ctx context.Context, email, firstName, lastName, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	// Bare address only: "Ada <a@x.com>" parses but is not a valid login
	// identifier.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return domain.User{}, &ValidationError{Message: "Enter a valid email address"}
	}
	if n := utf8.RuneCountInString(password); n < MinPasswordLength || n > MaxPasswordLength {
		return domain.User{}, &ValidationError{Message: "Password must be between 8 and 32 characters"}
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		PasswordHash: hash,
		Active:       true,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailExists
		}
		return domain.User{}, err
	}

	// Re-read so the caller sees database-assigned timestamps.
	return s.Store.Users().GetUserByID(ctx, u.ID)
}

// Profile fetches the user by id.
func (s *UserService) Profile(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdateName replaces the display name fields. Email is immutable.
func (s *UserService) UpdateName(ctx context.Context, userID, firstName, lastName string) (domain.User, error) {
	if err := s.Store.Users().UpdateName(ctx, userID, strings.TrimSpace(firstName), strings.TrimSpace(lastName)); err != nil {
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, userID)
}

// Deactivate marks the profile inactive. The user's outstanding passcode,
// if any, is left to expire on its own.
func (s *UserService) Deactivate(ctx context.Context, userID string) error {
	return s.Store.Users().Deactivate(ctx, userID)
}
