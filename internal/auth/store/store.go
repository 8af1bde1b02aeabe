package store

import (
	"context"
	"errors"

	"github.com/longevlabs/longev-auth/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	OTPCredentials() OTPCredentials

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is the entry point for every login flow. The lookup is
	// exact: emails are stored and compared case-sensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateName mutates the display name fields and bumps updated_at.
	UpdateName(ctx context.Context, userID, firstName, lastName string) error

	// Deactivate flips active=0 and bumps updated_at. It does not touch the
	// user's OTP credential; that is left to expire.
	Deactivate(ctx context.Context, userID string) error
}

type OTPCredentials interface {
	// Upsert writes the single credential row for a user, replacing any
	// existing one in the same statement. Last writer wins.
	Upsert(ctx context.Context, cred domain.OTPCredential) error

	// Get returns the current credential for the user, or ErrNotFound.
	// Expiry is not filtered here; callers check expires_at themselves.
	Get(ctx context.Context, userID string) (domain.OTPCredential, error)

	// Delete removes the credential. Deleting an absent row is a no-op,
	// not an error.
	Delete(ctx context.Context, userID string) error

	// DeleteExpiredForUser removes the user's credential only when it is
	// past expiry. A fresh replacement written concurrently is left alone.
	DeleteExpiredForUser(ctx context.Context, userID string) error

	// DeleteExpired removes all credentials past their expiry (housekeeping).
	DeleteExpired(ctx context.Context) error
}
