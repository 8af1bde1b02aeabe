package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/longevlabs/longev-auth/internal/auth/domain"
	"github.com/longevlabs/longev-auth/internal/auth/store"
	"github.com/longevlabs/longev-auth/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func createTestUser(t *testing.T, s *Store, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Active:       true,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestUpsertReplacesExistingCredential(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := createTestUser(t, s, "a@x.com")

	first := domain.OTPCredential{
		UserID:    u.ID,
		Code:      "111111",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	require.NoError(t, s.OTPCredentials().Upsert(ctx, first))

	second := first
	second.Code = "222222"
	require.NoError(t, s.OTPCredentials().Upsert(ctx, second))

	got, err := s.OTPCredentials().Get(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "222222", got.Code, "replacement must win")
}

func TestGetAbsentCredentialReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := createTestUser(t, s, "a@x.com")

	_, err := s.OTPCredentials().Get(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteAbsentCredentialIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := createTestUser(t, s, "a@x.com")

	require.NoError(t, s.OTPCredentials().Delete(ctx, u.ID))
}

func TestDeleteExpiredForUserSparesLiveCredential(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := createTestUser(t, s, "a@x.com")

	require.NoError(t, s.OTPCredentials().Upsert(ctx, domain.OTPCredential{
		UserID:    u.ID,
		Code:      "111111",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}))

	// Live row survives the guarded delete.
	require.NoError(t, s.OTPCredentials().DeleteExpiredForUser(ctx, u.ID))
	got, err := s.OTPCredentials().Get(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "111111", got.Code)

	require.NoError(t, s.OTPCredentials().Upsert(ctx, domain.OTPCredential{
		UserID:    u.ID,
		Code:      "222222",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	require.NoError(t, s.OTPCredentials().DeleteExpiredForUser(ctx, u.ID))
	_, err = s.OTPCredentials().Get(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteExpiredOnlyRemovesExpiredRows(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	expired := createTestUser(t, s, "expired@x.com")
	live := createTestUser(t, s, "live@x.com")

	require.NoError(t, s.OTPCredentials().Upsert(ctx, domain.OTPCredential{
		UserID:    expired.ID,
		Code:      "111111",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))
	require.NoError(t, s.OTPCredentials().Upsert(ctx, domain.OTPCredential{
		UserID:    live.ID,
		Code:      "222222",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}))

	require.NoError(t, s.OTPCredentials().DeleteExpired(ctx))

	_, err := s.OTPCredentials().Get(ctx, expired.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := s.OTPCredentials().Get(ctx, live.ID)
	require.NoError(t, err)
	require.Equal(t, "222222", got.Code)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	createTestUser(t, s, "a@x.com")

	dup := domain.User{
		ID:           idx.New().String(),
		Email:        "a@x.com",
		PasswordHash: "hash",
		Active:       true,
	}
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := createTestUser(t, s, "a@x.com")

	require.NoError(t, s.OTPCredentials().Upsert(ctx, domain.OTPCredential{
		UserID:    u.ID,
		Code:      "333333",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}))

	sentinel := store.ErrNotFound
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.OTPCredentials().Delete(ctx, u.ID); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	// Delete inside the failed transaction must not be visible.
	got, err := s.OTPCredentials().Get(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "333333", got.Code)
}
