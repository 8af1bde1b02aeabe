package service

import (
	"context"
	"testing"

	"github.com/longevlabs/longev-auth/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestSignupCreatesActiveUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	u, err := env.Users.Signup(ctx, "a@x.com", "Ada", "Lovelace", "pw12345678")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "a@x.com", u.Email)
	require.Equal(t, "Ada Lovelace", u.FullName())
	require.True(t, u.Active)
	require.False(t, u.CreatedAt.IsZero())

	// Password is stored hashed, never verbatim.
	require.NotContains(t, u.PasswordHash, "pw12345678")
	require.NoError(t, cryptox.VerifyPassword("pw12345678", u.PasswordHash))
}

func TestSignupValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unparseable email", "not-an-email", "pw12345678"},
		{"empty email", "", "pw12345678"},
		{"display name form", "Ada <a@x.com>", "pw12345678"},
		{"password too short", "a@x.com", "pw12345"},
		{"password too long", "a@x.com", "p123456789012345678901234567890123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.Users.Signup(ctx, tc.email, "Ada", "Lovelace", tc.password)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestSignupPasswordLengthBounds(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.Users.Signup(ctx, "min@x.com", "", "", "12345678")
	require.NoError(t, err, "8 characters is allowed")

	_, err = env.Users.Signup(ctx, "max@x.com", "", "", "12345678901234567890123456789012")
	require.NoError(t, err, "32 characters is allowed")

	// The bounds count characters, not bytes: these 20 characters encode
	// to more than 32 bytes and must still be accepted.
	_, err = env.Users.Signup(ctx, "utf8@x.com", "", "", "парольпарольпароль12")
	require.NoError(t, err, "multibyte passwords are measured in runes")
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signup(t, "a@x.com", "pw12345678")

	_, err := env.Users.Signup(ctx, "a@x.com", "Someone", "Else", "pw12345678")
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestUpdateNameKeepsEmail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")

	updated, err := env.Users.UpdateName(ctx, u.ID, "Grace", "Hopper")
	require.NoError(t, err)
	require.Equal(t, "Grace Hopper", updated.FullName())
	require.Equal(t, "a@x.com", updated.Email)
}

func TestDeactivateFlipsActiveOnly(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")

	require.NoError(t, env.Users.Deactivate(ctx, u.ID))

	got, err := env.Users.Profile(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, got.Active)
	require.Equal(t, "a@x.com", got.Email)
}
