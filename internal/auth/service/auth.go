package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/longevlabs/longev-auth/internal/auth/domain"
	"github.com/longevlabs/longev-auth/internal/auth/mailer"
	"github.com/longevlabs/longev-auth/internal/auth/store"
	"github.com/longevlabs/longev-auth/pkg/cryptox"
	"github.com/longevlabs/longev-auth/pkg/jwtx"
	"github.com/longevlabs/longev-auth/pkg/slogx"
)

// DefaultOTPTTL is the passcode lifetime when none is configured.
const DefaultOTPTTL = 10 * time.Minute

var (
	ErrUserNotFound      = errors.New("user_not_found")
	ErrProfileInactive   = errors.New("profile_inactive")
	ErrIncorrectPassword = errors.New("incorrect_password")

	// ErrIncorrectOTP covers absent, mismatched, and expired passcodes
	// alike. Collapsing the three keeps the response from revealing
	// whether a code is outstanding for an account.
	ErrIncorrectOTP = errors.New("incorrect_otp")
)

// MailEnqueuer is the slice of the mail dispatcher the auth flows need.
type MailEnqueuer interface {
	Enqueue(m mailer.Message) bool
}

// AuthService orchestrates the two login flows: password exchange and the
// request/verify passcode round trip.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
	OTP    *OTPGenerator
	Mail   MailEnqueuer
	OTPTTL time.Duration
}

// PasswordLogin exchanges email + password for an access token.
func (s *AuthService) PasswordLogin(ctx context.Context, email, password string) (string, error) {
	l := slogx.FromContext(ctx)

	u, err := s.lookupActiveUser(ctx, email)
	if err != nil {
		return "", err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("password verification failed", slog.String("user_id", u.ID))
		return "", ErrIncorrectPassword
	}

	return s.Tokens.Issue(u, jwtx.AMRPassword)
}

// RequestOTP mints a fresh passcode for the user, stores it with an expiry,
// and queues an email carrying it. Any previously outstanding passcode is
// replaced in the same statement. Mail delivery is fire-and-forget; the
// caller gets a success as soon as the credential is persisted.
func (s *AuthService) RequestOTP(ctx context.Context, email string) error {
	l := slogx.FromContext(ctx)

	u, err := s.lookupActiveUser(ctx, email)
	if err != nil {
		return err
	}

	code, err := s.OTP.Generate()
	if err != nil {
		return err
	}

	ttl := s.OTPTTL
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}

	cred := domain.OTPCredential{
		UserID:    u.ID,
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if err := s.Store.OTPCredentials().Upsert(ctx, cred); err != nil {
		return fmt.Errorf("store otp credential: %w", err)
	}

	s.Mail.Enqueue(mailer.Message{
		To:      u.Email,
		Subject: "Authorization",
		Body:    fmt.Sprintf("You login data: email %s  otp_code %s", u.Email, code),
	})

	l.Info("otp issued", slog.String("user_id", u.ID), slog.Time("expires_at", cred.ExpiresAt))
	return nil
}

// VerifyOTP exchanges email + passcode for an access token. The fetch,
// compare, expiry check, and consume run in one transaction so a verify
// cannot race a concurrent reissue or a second verify of the same code.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	l := slogx.FromContext(ctx)

	u, err := s.lookupActiveUser(ctx, email)
	if err != nil {
		return "", err
	}

	var expired bool
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		cred, err := tx.OTPCredentials().Get(ctx, u.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrIncorrectOTP
			}
			return err
		}

		if subtle.ConstantTimeCompare([]byte(cred.Code), []byte(code)) != 1 {
			return ErrIncorrectOTP
		}

		if cred.Expired(time.Now().UTC()) {
			expired = true
			return ErrIncorrectOTP
		}

		// Single use: a successful verify consumes the credential.
		return tx.OTPCredentials().Delete(ctx, u.ID)
	})
	if err != nil {
		if expired {
			// The rollback kept the dead row around; clear it so the
			// table does not wait on the housekeeping sweep. The guarded
			// delete spares a replacement issued since the transaction.
			_ = s.Store.OTPCredentials().DeleteExpiredForUser(ctx, u.ID)
		}
		if errors.Is(err, ErrIncorrectOTP) {
			l.Info("otp verification failed", slog.String("user_id", u.ID))
		}
		return "", err
	}

	return s.Tokens.Issue(u, jwtx.AMROTP)
}

// lookupActiveUser resolves the email and enforces the active flag. Every
// login flow rejects deactivated profiles before touching credentials.
func (s *AuthService) lookupActiveUser(ctx context.Context, email string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	if !u.Active {
		return domain.User{}, ErrProfileInactive
	}
	return u, nil
}
