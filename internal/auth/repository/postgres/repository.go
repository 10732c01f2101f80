package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the slice of pgxpool.Pool the repository needs; pgxmock
// implements it for tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, username, email, password_hash, role, is_active,
		failed_login_attempts, account_locked_until, last_login, created_at, updated_at`

func (r *PostgresRepository) GetActiveByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	query := `
		SELECT ` + userColumns + `
		FROM admin_users
		WHERE username = $1 AND is_active = TRUE
		LIMIT 1;
	`
	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	query := `
		SELECT ` + userColumns + `
		FROM admin_users
		WHERE id = $1
		LIMIT 1;
	`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// IncrementFailedAttempts delegates the read-modify-write to a single
// UPDATE so concurrent failed logins for the same user serialize in the
// database rather than racing in the application.
func (r *PostgresRepository) IncrementFailedAttempts(ctx context.Context, id string) (int, error) {
	var attempts int
	err := r.db.QueryRow(ctx, `
		UPDATE admin_users
		SET failed_login_attempts = failed_login_attempts + 1, updated_at = now()
		WHERE id = $1
		RETURNING failed_login_attempts;
	`, id).Scan(&attempts)
	if err != nil {
		return 0, fmt.Errorf("failed to increment login attempts: %w", err)
	}

	return attempts, nil
}

func (r *PostgresRepository) LockAccount(ctx context.Context, id string, until time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE admin_users
		SET account_locked_until = $2, updated_at = now()
		WHERE id = $1;
	`, id, until)
	if err != nil {
		return fmt.Errorf("failed to lock account: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ClearExpiredLock(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE admin_users
		SET failed_login_attempts = 0, account_locked_until = NULL, updated_at = now()
		WHERE id = $1;
	`, id)
	if err != nil {
		return fmt.Errorf("failed to clear expired lock: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ResetLoginState(ctx context.Context, id string, lastLogin time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE admin_users
		SET failed_login_attempts = 0, account_locked_until = NULL, last_login = $2, updated_at = now()
		WHERE id = $1;
	`, id, lastLogin)
	if err != nil {
		return fmt.Errorf("failed to reset login state: %w", err)
	}

	return nil
}

func scanUser(row pgx.Row) (*domain.AdminUser, error) {
	var user domain.AdminUser
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role,
		&user.IsActive, &user.FailedLoginAttempts, &user.AccountLockedUntil,
		&user.LastLogin, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
