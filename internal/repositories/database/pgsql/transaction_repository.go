package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jslogistics/jsl-backend/internal/apperrors"
	"github.com/jslogistics/jsl-backend/internal/core/domain"
	portsrepo "github.com/jslogistics/jsl-backend/internal/core/ports/repositories"
	"github.com/jslogistics/jsl-backend/internal/models"
	"github.com/jslogistics/jsl-backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, client_id, order_id, type, amount, description, date, status`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SavePaymentWithSettlement appends the payment, then settles unpaid charges
// oldest-first from the cumulative paid pool. A charge flips to paid only
// when the remaining pool covers it in full; partial coverage leaves it
// unpaid until a later payment tops the pool up. The client row lock keeps
// settlement serialized with charge admission on the same account.
func (r *PgxTransactionRepository) SavePaymentWithSettlement(ctx context.Context, payment domain.Transaction) (*domain.Transaction, error) {
	if payment.Type != domain.TxPayment {
		return nil, fmt.Errorf("%w: expected a payment transaction, got %s", apperrors.ErrValidation, payment.Type)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if _, err := findUserByIDForUpdate(ctx, tx, payment.ClientID); err != nil {
		return nil, err
	}

	if err := insertTransactionInTx(ctx, tx, payment); err != nil {
		return nil, err
	}

	// Pool = everything ever paid minus the charges already settled.
	poolQuery := `
		SELECT COALESCE(SUM(CASE WHEN type = 'payment' THEN amount ELSE 0 END), 0)
		     - COALESCE(SUM(CASE WHEN type = 'charge' AND status = 'paid' THEN amount ELSE 0 END), 0)
		FROM transactions
		WHERE client_id = $1;
	`
	var pool decimal.Decimal
	if err := tx.QueryRow(ctx, poolQuery, payment.ClientID).Scan(&pool); err != nil {
		return nil, fmt.Errorf("failed to compute settlement pool for client %s: %w", payment.ClientID, err)
	}

	unpaidQuery := `
		SELECT transaction_id, order_id, amount
		FROM transactions
		WHERE client_id = $1 AND type = 'charge' AND status = 'unpaid'
		ORDER BY date ASC, transaction_id ASC
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, unpaidQuery, payment.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unpaid charges for client %s: %w", payment.ClientID, err)
	}

	var charges []domain.UnpaidCharge
	for rows.Next() {
		var c domain.UnpaidCharge
		if err := rows.Scan(&c.TransactionID, &c.OrderID, &c.Amount); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan unpaid charge: %w", err)
		}
		charges = append(charges, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate unpaid charges: %w", err)
	}

	settled := domain.SettleCharges(pool, charges)
	if len(settled) > 0 {
		batch := &pgx.Batch{}
		for _, c := range settled {
			batch.Queue(`UPDATE transactions SET status = 'paid' WHERE transaction_id = $1;`, c.TransactionID)
			if c.OrderID != nil {
				batch.Queue(`UPDATE orders SET payment_status = 'paid', updated_at = $2 WHERE order_id = $1;`, *c.OrderID, payment.Date)
			}
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return nil, fmt.Errorf("failed to settle charges for client %s: %w", payment.ClientID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PgxTransactionRepository) ListTransactionsByClient(ctx context.Context, clientID string, limit int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE client_id = $1 ORDER BY date DESC, transaction_id DESC`
	args := []any{clientID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	query += `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for client %s: %w", clientID, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.ClientID, &m.OrderID, &m.Type, &m.Amount, &m.Description, &m.Date, &m.Status); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions for client %s: %w", clientID, err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) SummarizeByClient(ctx context.Context, clientID string) (portsrepo.LedgerTotals, error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'charge'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'payment'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'charge' AND status = 'unpaid'), 0)
		FROM transactions
		WHERE client_id = $1;
	`
	var totals portsrepo.LedgerTotals
	if err := r.Pool.QueryRow(ctx, query, clientID).Scan(&totals.TotalCharged, &totals.TotalPaid, &totals.PendingCharges); err != nil {
		return portsrepo.LedgerTotals{}, fmt.Errorf("failed to summarize ledger for client %s: %w", clientID, err)
	}
	return totals, nil
}

// insertTransactionInTx appends one ledger entry inside an open transaction.
func insertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query, m.TransactionID, m.ClientID, m.OrderID, m.Type, m.Amount, m.Description, m.Date, m.Status)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}
