package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jslogistics/jsl-backend/internal/apperrors"
	"github.com/jslogistics/jsl-backend/internal/core/domain"
	portsrepo "github.com/jslogistics/jsl-backend/internal/core/ports/repositories"
	"github.com/jslogistics/jsl-backend/internal/models"
	"github.com/jslogistics/jsl-backend/internal/utils/mapping"
)

const orderColumns = `order_id, client_id, tracking_number, sender_company, sender_contact, sender_phone, sender_address,
		recipient_name, recipient_contact, recipient_phone, recipient_address, recipient_city,
		package_description, weight_kg, dimensions_cm, declared_value_cop, service_type, shipping_cost_cop,
		payment_status, invoice_number, status, estimated_delivery, delivered_at, timeline, created_at, updated_at`

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// CreateOrderWithCharge admits the charge against the client's derived
// balance and persists order plus charge transaction atomically. The client
// row lock taken first serializes concurrent creations for the same account,
// so two orders can never both pass admission against a stale balance.
func (r *PgxOrderRepository) CreateOrderWithCharge(ctx context.Context, order domain.Order, charge domain.Transaction) (*domain.Order, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	client, err := findUserByIDForUpdate(ctx, tx, order.ClientID)
	if err != nil {
		return nil, err
	}

	balance, err := ledgerBalanceInTx(ctx, tx, order.ClientID)
	if err != nil {
		return nil, err
	}

	if err := domain.AdmitCharge(client.CreditLimit, balance, charge.Amount); err != nil {
		return nil, err
	}

	// Tracking numbers come from a dedicated sequence allocated inside the
	// same transaction, so an admitted order never leaves without one.
	var seq int64
	if err := tx.QueryRow(ctx, `SELECT nextval('tracking_number_seq');`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to allocate tracking number: %w", err)
	}
	order.TrackingNumber = domain.FormatTrackingNumber(order.CreatedAt.Year(), seq)

	m := mapping.ToModelOrder(order)
	timelineJSON, err := json.Marshal(m.Timeline)
	if err != nil {
		return nil, fmt.Errorf("failed to encode timeline: %w", err)
	}

	insertOrder := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26);
	`
	_, err = tx.Exec(ctx, insertOrder,
		m.OrderID, m.ClientID, m.TrackingNumber,
		m.SenderCompany, m.SenderContact, m.SenderPhone, m.SenderAddress,
		m.RecipientName, m.RecipientContact, m.RecipientPhone, m.RecipientAddress, m.RecipientCity,
		m.PackageDescription, m.WeightKg, m.DimensionsCm, m.DeclaredValueCOP, m.ServiceType, m.ShippingCostCOP,
		m.PaymentStatus, m.InvoiceNumber, m.Status, m.EstimatedDelivery, m.DeliveredAt, timelineJSON,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order %s: %w", m.OrderID, err)
	}

	if err := insertTransactionInTx(ctx, tx, charge); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &order, nil
}

// AdvanceOrderStatus locks the order row, applies the domain transition and
// writes the result. Concurrent transitions on one order serialize on the
// row lock; the loser re-reads a terminal or advanced state and fails the
// state machine check instead of racing past it.
func (r *PgxOrderRepository) AdvanceOrderStatus(ctx context.Context, orderID string, next domain.OrderStatus, location string, now time.Time) (*domain.Order, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1 FOR UPDATE;`
	order, err := scanOrder(tx.QueryRow(ctx, query, orderID))
	if err != nil {
		return nil, err
	}

	if err := order.Advance(next, location, now); err != nil {
		return nil, err
	}

	m := mapping.ToModelOrder(*order)
	timelineJSON, err := json.Marshal(m.Timeline)
	if err != nil {
		return nil, fmt.Errorf("failed to encode timeline: %w", err)
	}

	update := `
		UPDATE orders
		SET status = $2, timeline = $3, delivered_at = $4, updated_at = $5
		WHERE order_id = $1;
	`
	if _, err := tx.Exec(ctx, update, m.OrderID, m.Status, timelineJSON, m.DeliveredAt, m.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", orderID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`
	return scanOrder(r.Pool.QueryRow(ctx, query, orderID))
}

func (r *PgxOrderRepository) FindOrderByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE tracking_number = $1;`
	return scanOrder(r.Pool.QueryRow(ctx, query, trackingNumber))
}

func (r *PgxOrderRepository) ListOrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE client_id = $1 ORDER BY created_at DESC, order_id DESC;`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for client %s: %w", clientID, err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders for client %s: %w", clientID, err)
	}
	return orders, nil
}

func (r *PgxOrderRepository) CountOrdersByClient(ctx context.Context, clientID string) (portsrepo.OrderCounts, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'delivered'),
		       COUNT(*) FILTER (WHERE status NOT IN ('delivered', 'cancelled'))
		FROM orders
		WHERE client_id = $1;
	`
	var counts portsrepo.OrderCounts
	if err := r.Pool.QueryRow(ctx, query, clientID).Scan(&counts.Total, &counts.Delivered, &counts.Active); err != nil {
		return portsrepo.OrderCounts{}, fmt.Errorf("failed to count orders for client %s: %w", clientID, err)
	}
	return counts, nil
}

// scanOrder reads one order row, decoding the embedded JSONB timeline.
func scanOrder(row pgx.Row) (*domain.Order, error) {
	var m models.Order
	var timelineJSON []byte
	err := row.Scan(
		&m.OrderID, &m.ClientID, &m.TrackingNumber,
		&m.SenderCompany, &m.SenderContact, &m.SenderPhone, &m.SenderAddress,
		&m.RecipientName, &m.RecipientContact, &m.RecipientPhone, &m.RecipientAddress, &m.RecipientCity,
		&m.PackageDescription, &m.WeightKg, &m.DimensionsCm, &m.DeclaredValueCOP, &m.ServiceType, &m.ShippingCostCOP,
		&m.PaymentStatus, &m.InvoiceNumber, &m.Status, &m.EstimatedDelivery, &m.DeliveredAt, &timelineJSON,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}
	if err := json.Unmarshal(timelineJSON, &m.Timeline); err != nil {
		return nil, fmt.Errorf("failed to decode timeline for order %s: %w", m.OrderID, err)
	}
	order := mapping.ToDomainOrder(m)
	return &order, nil
}
