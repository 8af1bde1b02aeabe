package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/longevlabs/longev-auth/internal/auth/domain"
	"github.com/longevlabs/longev-auth/internal/auth/mailer"
	"github.com/longevlabs/longev-auth/internal/auth/store"
	"github.com/longevlabs/longev-auth/internal/auth/store/drivers/sqlite"
	"github.com/longevlabs/longev-auth/pkg/cryptox"
	"github.com/longevlabs/longev-auth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type fakeMail struct {
	msgs []mailer.Message
}

func (f *fakeMail) Enqueue(m mailer.Message) bool {
	f.msgs = append(f.msgs, m)
	return true
}

type testEnv struct {
	Auth     *AuthService
	Users    *UserService
	Mail     *fakeMail
	Store    store.Store
	Verifier *jwtx.EdDSAVerifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	pemKey, err := jwtx.GenerateEd25519PEM()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test-key", pemKey)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	tokens := &TokenService{
		Signer:    signer,
		Issuer:    "longev-auth-test",
		AccessTTL: time.Hour,
	}

	mail := &fakeMail{}
	return &testEnv{
		Auth: &AuthService{
			Store:  st,
			Tokens: tokens,
			OTP:    &OTPGenerator{Digits: 6},
			Mail:   mail,
			OTPTTL: 10 * time.Minute,
		},
		Users:    &UserService{Store: st},
		Mail:     mail,
		Store:    st,
		Verifier: jwtx.NewVerifierEdDSA(keys, "longev-auth-test"),
	}
}

func (e *testEnv) signup(t *testing.T, email, password string) domain.User {
	t.Helper()
	u, err := e.Users.Signup(context.Background(), email, "Ada", "Lovelace", password)
	require.NoError(t, err)
	return u
}

// otpFor reads the stored passcode for a user, the same value the email
// would carry.
func (e *testEnv) otpFor(t *testing.T, userID string) string {
	t.Helper()
	cred, err := e.Store.OTPCredentials().Get(context.Background(), userID)
	require.NoError(t, err)
	return cred.Code
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPasswordLoginIssuesVerifiableToken(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")

	token, err := env.Auth.PasswordLogin(ctx, "a@x.com", "pw12345678")
	require.NoError(t, err)

	claims, err := env.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.Subject)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, []string{jwtx.AMRPassword}, claims.AMR)
}

func TestPasswordLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signup(t, "a@x.com", "pw12345678")

	_, err := env.Auth.PasswordLogin(ctx, "a@x.com", "wrong-password")
	require.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestPasswordLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.Auth.PasswordLogin(ctx, "nobody@x.com", "pw12345678")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestInactiveProfileRejectedOnEveryFlow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")
	require.NoError(t, env.Users.Deactivate(ctx, u.ID))

	_, err := env.Auth.PasswordLogin(ctx, "a@x.com", "pw12345678")
	require.ErrorIs(t, err, ErrProfileInactive)

	err = env.Auth.RequestOTP(ctx, "a@x.com")
	require.ErrorIs(t, err, ErrProfileInactive)

	_, err = env.Auth.VerifyOTP(ctx, "a@x.com", "123456")
	require.ErrorIs(t, err, ErrProfileInactive)
}

func TestRequestOTPStoresCredentialAndQueuesMail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")

	require.NoError(t, env.Auth.RequestOTP(ctx, "a@x.com"))

	cred, err := env.Store.OTPCredentials().Get(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, cred.Code, 6)
	require.WithinDuration(t, time.Now().Add(10*time.Minute), cred.ExpiresAt, 10*time.Second,
		"expiry must be the configured lifetime from now")

	require.Len(t, env.Mail.msgs, 1)
	require.Equal(t, "a@x.com", env.Mail.msgs[0].To)
	require.Equal(t, "Authorization", env.Mail.msgs[0].Subject)
	require.Contains(t, env.Mail.msgs[0].Body, cred.Code)
}

func TestVerifyOTPHappyPathConsumesCredential(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")

	require.NoError(t, env.Auth.RequestOTP(ctx, "a@x.com"))
	code := env.otpFor(t, u.ID)

	token, err := env.Auth.VerifyOTP(ctx, "a@x.com", code)
	require.NoError(t, err)

	claims, err := env.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.Subject)
	require.Equal(t, []string{jwtx.AMROTP}, claims.AMR)

	// Consumed on success.
	_, err = env.Store.OTPCredentials().Get(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestVerifyOTPReplayRejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")

	require.NoError(t, env.Auth.RequestOTP(ctx, "a@x.com"))
	code := env.otpFor(t, u.ID)

	_, err := env.Auth.VerifyOTP(ctx, "a@x.com", code)
	require.NoError(t, err)

	_, err = env.Auth.VerifyOTP(ctx, "a@x.com", code)
	require.ErrorIs(t, err, ErrIncorrectOTP)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")

	require.NoError(t, env.Auth.RequestOTP(ctx, "a@x.com"))
	code := env.otpFor(t, u.ID)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	_, err := env.Auth.VerifyOTP(ctx, "a@x.com", wrong)
	require.ErrorIs(t, err, ErrIncorrectOTP)

	// A failed attempt must not consume the credential.
	_, err = env.Auth.VerifyOTP(ctx, "a@x.com", code)
	require.NoError(t, err)
}

func TestVerifyOTPExpiredCode(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")

	require.NoError(t, env.Store.OTPCredentials().Upsert(ctx, domain.OTPCredential{
		UserID:    u.ID,
		Code:      "123456",
		ExpiresAt: time.Now().UTC().Add(-time.Second),
	}))

	_, err := env.Auth.VerifyOTP(ctx, "a@x.com", "123456")
	require.ErrorIs(t, err, ErrIncorrectOTP)

	// The dead row is cleared on the way out.
	_, err = env.Store.OTPCredentials().Get(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

// reissueDuringVerifyStore injects a credential reissue into the gap
// between the verify transaction ending and the caller's expired-row
// cleanup, the interleaving a concurrent RequestOTP can produce.
type reissueDuringVerifyStore struct {
	store.Store
	replacement domain.OTPCredential
}

func (s *reissueDuringVerifyStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	err := s.Store.WithTx(ctx, fn)
	_ = s.Store.OTPCredentials().Upsert(ctx, s.replacement)
	return err
}

func TestExpiredVerifyCleanupSparesConcurrentReissue(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")

	require.NoError(t, env.Store.OTPCredentials().Upsert(ctx, domain.OTPCredential{
		UserID:    u.ID,
		Code:      "111111",
		ExpiresAt: time.Now().UTC().Add(-time.Second),
	}))

	env.Auth.Store = &reissueDuringVerifyStore{
		Store: env.Store,
		replacement: domain.OTPCredential{
			UserID:    u.ID,
			Code:      "222222",
			ExpiresAt: time.Now().UTC().Add(10 * time.Minute),
		},
	}

	_, err := env.Auth.VerifyOTP(ctx, "a@x.com", "111111")
	require.ErrorIs(t, err, ErrIncorrectOTP)

	// The freshly issued code must still be usable.
	env.Auth.Store = env.Store
	token, err := env.Auth.VerifyOTP(ctx, "a@x.com", "222222")
	require.NoError(t, err)
	require.NotEmpty(t, token)
}

func TestVerifyOTPAbsentCode(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signup(t, "a@x.com", "pw12345678")

	_, err := env.Auth.VerifyOTP(ctx, "a@x.com", "123456")
	require.ErrorIs(t, err, ErrIncorrectOTP)
}

func TestReissueInvalidatesPreviousCode(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")

	require.NoError(t, env.Auth.RequestOTP(ctx, "a@x.com"))
	first := env.otpFor(t, u.ID)

	// Pin a distinct replacement so the test does not depend on two random
	// codes differing.
	second := "654321"
	if second == first {
		second = "654322"
	}
	require.NoError(t, env.Store.OTPCredentials().Upsert(ctx, domain.OTPCredential{
		UserID:    u.ID,
		Code:      second,
		ExpiresAt: time.Now().UTC().Add(10 * time.Minute),
	}))

	_, err := env.Auth.VerifyOTP(ctx, "a@x.com", first)
	require.ErrorIs(t, err, ErrIncorrectOTP)

	token, err := env.Auth.VerifyOTP(ctx, "a@x.com", second)
	require.NoError(t, err)
	require.NotEmpty(t, token)
}

func TestDeactivationLeavesCredentialInPlace(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")

	require.NoError(t, env.Auth.RequestOTP(ctx, "a@x.com"))
	require.NoError(t, env.Users.Deactivate(ctx, u.ID))

	// Deactivation gates login, it does not cascade to the credential.
	_, err := env.Store.OTPCredentials().Get(ctx, u.ID)
	require.NoError(t, err)
}

func TestHousekeepingSweepsExpiredCredentials(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")

	require.NoError(t, env.Store.OTPCredentials().Upsert(ctx, domain.OTPCredential{
		UserID:    u.ID,
		Code:      "123456",
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}))

	hk := NewHousekeepingService(env.Store, discardLogger(), time.Hour)
	hk.Start()
	hk.Stop()

	_, err := env.Store.OTPCredentials().Get(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
