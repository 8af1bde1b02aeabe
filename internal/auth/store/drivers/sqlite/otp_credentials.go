package sqlite

import (
	"context"
	"time"

	"github.com/longevlabs/longev-auth/internal/auth/domain"
)

type otpCredentialsRepo struct {
	q querier
}

// Upsert is a single statement so a concurrent request for the same user
// cannot observe a window with no credential: the replacement is atomic and
// the last writer wins.
func (r *otpCredentialsRepo) Upsert(ctx context.Context, cred domain.OTPCredential) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO otp_credentials (user_id, code, expires_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		 	code = excluded.code,
		 	expires_at = excluded.expires_at,
		 	created_at = CURRENT_TIMESTAMP`,
		cred.UserID, cred.Code, cred.ExpiresAt.UTC(),
	)
	return err
}

func (r *otpCredentialsRepo) Get(ctx context.Context, userID string) (domain.OTPCredential, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT user_id, code, expires_at, created_at
		 FROM otp_credentials WHERE user_id = ?`, userID)

	var cred domain.OTPCredential
	err := row.Scan(&cred.UserID, &cred.Code, &cred.ExpiresAt, &cred.CreatedAt)
	if err != nil {
		return domain.OTPCredential{}, mapNotFound(err)
	}
	return cred, nil
}

func (r *otpCredentialsRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM otp_credentials WHERE user_id = ?`, userID)
	return err
}

// DeleteExpiredForUser guards on expires_at so it can never destroy a
// replacement credential issued after the caller looked at the row.
func (r *otpCredentialsRepo) DeleteExpiredForUser(ctx context.Context, userID string) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM otp_credentials WHERE user_id = ? AND expires_at < ?`,
		userID, time.Now().UTC())
	return err
}

func (r *otpCredentialsRepo) DeleteExpired(ctx context.Context) error {
	// Bind the cutoff from Go so it is encoded the same way expires_at was
	// written; CURRENT_TIMESTAMP uses a different text format.
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM otp_credentials WHERE expires_at < ?`, time.Now().UTC())
	return err
}
