package sqlite

import (
	"context"

	"github.com/longevlabs/longev-auth/internal/auth/domain"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, email, first_name, last_name, password_hash, active, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO users (id, email, first_name, last_name, password_hash, active)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.FirstName, u.LastName, u.PasswordHash, u.Active,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateName(ctx context.Context, userID, firstName, lastName string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE users
		 SET first_name = ?, last_name = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		firstName, lastName, userID,
	)
	return err
}

func (r *usersRepo) Deactivate(ctx context.Context, userID string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE users SET active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		userID,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.PasswordHash,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}
