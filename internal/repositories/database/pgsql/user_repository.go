package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jslogistics/jsl-backend/internal/apperrors"
	"github.com/jslogistics/jsl-backend/internal/core/domain"
	portsrepo "github.com/jslogistics/jsl-backend/internal/core/ports/repositories"
	"github.com/jslogistics/jsl-backend/internal/models"
	"github.com/jslogistics/jsl-backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// pgUniqueViolation is the Postgres error code for a unique index conflict.
const pgUniqueViolation = "23505"

const userColumns = `user_id, name, company, email, phone, address, nit, password_hash, credit_limit, role, is_active, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Company,
		m.Email,
		m.Phone,
		m.Address,
		m.NIT,
		m.PasswordHash,
		m.CreditLimit,
		m.Role,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("email %s: %w", m.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	return r.scanUser(r.Pool.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return r.scanUser(r.Pool.QueryRow(ctx, query, email))
}

func (r *PgxUserRepository) DeactivateUser(ctx context.Context, userID string) error {
	cmd, err := r.Pool.Exec(ctx,
		`UPDATE users SET is_active = FALSE, updated_at = $2 WHERE user_id = $1;`,
		userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to deactivate user %s: %w", userID, err)
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// findUserByIDForUpdate locks the client row inside an open transaction.
// Every balance-affecting operation takes this lock first, which serializes
// credit admission and payment settlement per account.
func findUserByIDForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 FOR UPDATE;`
	var m models.User
	err := tx.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.Name,
		&m.Company,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.NIT,
		&m.PasswordHash,
		&m.CreditLimit,
		&m.Role,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock user %s: %w", userID, err)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

// ledgerBalanceInTx folds the client's transaction log inside an open
// transaction: sum(payments) - sum(charges).
func ledgerBalanceInTx(ctx context.Context, tx pgx.Tx, clientID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'payment' THEN amount ELSE -amount END), 0)
		FROM transactions
		WHERE client_id = $1;
	`
	var balance decimal.Decimal
	if err := tx.QueryRow(ctx, query, clientID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to fold balance for client %s: %w", clientID, err)
	}
	return balance, nil
}

func (r *PgxUserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Company,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.NIT,
		&m.PasswordHash,
		&m.CreditLimit,
		&m.Role,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}
