package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/longevlabs/longev-auth/internal/auth/mailer"
	"github.com/longevlabs/longev-auth/internal/auth/service"
	"github.com/longevlabs/longev-auth/internal/auth/store"
	"github.com/longevlabs/longev-auth/internal/auth/store/drivers/sqlite"
	"github.com/longevlabs/longev-auth/pkg/authsdk"
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

type apiTestEnv struct {
	Client *authsdk.Client
	Store  store.Store
	Mail   *fakeMail
}

func newAPITestEnv(t *testing.T) *apiTestEnv {
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

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens := &service.TokenService{
		Signer:    signer,
		Issuer:    "longev-auth-test",
		AccessTTL: time.Hour,
	}
	mail := &fakeMail{}

	router := NewRouter(keys, jwtx.NewVerifierEdDSA(keys, "longev-auth-test"), "test", st, logger)
	router.AuthService = &service.AuthService{
		Store:  st,
		Tokens: tokens,
		OTP:    &service.OTPGenerator{Digits: 6},
		Mail:   mail,
		OTPTTL: 10 * time.Minute,
	}
	router.UserService = &service.UserService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &apiTestEnv{
		Client: authsdk.NewClient(srv.URL),
		Store:  st,
		Mail:   mail,
	}
}

func (e *apiTestEnv) signup(t *testing.T, email, password string) authsdk.UserResponse {
	t.Helper()
	u, err := e.Client.Signup(context.Background(), authsdk.SignupRequest{
		Email:     email,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  password,
	})
	require.NoError(t, err)
	return u
}

func (e *apiTestEnv) requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

func TestSignupEndpoint(t *testing.T) {
	env := newAPITestEnv(t)

	u := env.signup(t, "a@x.com", "pw12345678")
	require.NotEmpty(t, u.ID)
	require.Equal(t, "a@x.com", u.Email)
	require.Equal(t, "Ada", u.FirstName)

	_, err := env.Client.Signup(context.Background(), authsdk.SignupRequest{
		Email:    "a@x.com",
		Password: "pw12345678",
	})
	env.requireAPIError(t, err, http.StatusBadRequest, authsdk.ErrorCodeEmailExists)

	_, err = env.Client.Signup(context.Background(), authsdk.SignupRequest{
		Email:    "b@x.com",
		Password: "short",
	})
	env.requireAPIError(t, err, http.StatusBadRequest, authsdk.ErrorCodeValidationError)
}

func TestPasswordLoginEndpoint(t *testing.T) {
	ctx := context.Background()
	env := newAPITestEnv(t)
	env.signup(t, "a@x.com", "pw12345678")

	resp, err := env.Client.PasswordLogin(ctx, "a@x.com", "pw12345678")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	_, err = env.Client.PasswordLogin(ctx, "a@x.com", "wrong-password")
	env.requireAPIError(t, err, http.StatusBadRequest, authsdk.ErrorCodeIncorrectPassword)

	_, err = env.Client.PasswordLogin(ctx, "nobody@x.com", "pw12345678")
	env.requireAPIError(t, err, http.StatusNotFound, authsdk.ErrorCodeNotFound)
}

func TestOTPLoginRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newAPITestEnv(t)
	u := env.signup(t, "a@x.com", "pw12345678")

	msg, err := env.Client.RequestOTP(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, msg.Message)
	require.Len(t, env.Mail.msgs, 1)

	cred, err := env.Store.OTPCredentials().Get(ctx, u.ID)
	require.NoError(t, err)

	resp, err := env.Client.OTPLogin(ctx, "a@x.com", cred.Code)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	// Single use: the same code is rejected on replay.
	_, err = env.Client.OTPLogin(ctx, "a@x.com", cred.Code)
	env.requireAPIError(t, err, http.StatusBadRequest, authsdk.ErrorCodeIncorrectOTP)
}

func TestOTPLoginIdenticalErrorForAbsentAndWrongCodes(t *testing.T) {
	ctx := context.Background()
	env := newAPITestEnv(t)
	env.signup(t, "a@x.com", "pw12345678")

	// No code requested yet.
	_, errAbsent := env.Client.OTPLogin(ctx, "a@x.com", "123456")

	_, err := env.Client.RequestOTP(ctx, "a@x.com")
	require.NoError(t, err)
	_, errWrong := env.Client.OTPLogin(ctx, "a@x.com", "000000")

	var absent, wrong *authsdk.APIError
	require.ErrorAs(t, errAbsent, &absent)
	require.ErrorAs(t, errWrong, &wrong)
	require.Equal(t, absent.Code, wrong.Code)
	require.Equal(t, absent.Message, wrong.Message)
	require.Equal(t, absent.StatusCode, wrong.StatusCode)
}

func TestProfileEndpoints(t *testing.T) {
	ctx := context.Background()
	env := newAPITestEnv(t)
	env.signup(t, "a@x.com", "pw12345678")

	login, err := env.Client.PasswordLogin(ctx, "a@x.com", "pw12345678")
	require.NoError(t, err)
	token := login.Token

	profile, err := env.Client.Profile(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", profile.Email)
	require.Equal(t, "Ada", profile.FirstName)

	updated, err := env.Client.UpdateProfile(ctx, token, authsdk.ProfileUpdateRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
	})
	require.NoError(t, err)
	require.Equal(t, "Grace", updated.Data.FirstName)
	require.Equal(t, "a@x.com", updated.Data.Email, "email is immutable")

	msg, err := env.Client.DeactivateProfile(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "User profile has been deactivated", msg.Message)

	// Deactivated profiles cannot log in again.
	_, err = env.Client.PasswordLogin(ctx, "a@x.com", "pw12345678")
	env.requireAPIError(t, err, http.StatusBadRequest, authsdk.ErrorCodeProfileInactive)
}

func TestProfileRequiresBearerToken(t *testing.T) {
	ctx := context.Background()
	env := newAPITestEnv(t)

	_, err := env.Client.Profile(ctx, "")
	var apiErr *authsdk.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	_, err = env.Client.Profile(ctx, "not-a-jwt")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestHealthAndJWKSEndpoints(t *testing.T) {
	env := newAPITestEnv(t)
	base := env.Client.BaseURL

	for _, path := range []string{"/livez", "/readyz", "/.well-known/jwks.json"} {
		resp, err := http.Get(base + path)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		_ = resp.Body.Close()
	}
}
