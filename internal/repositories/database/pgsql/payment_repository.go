package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DesignDeskHQ/design_desk_app/internal/apperrors"
	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	portsrepo "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/repositories"
	"github.com/DesignDeskHQ/design_desk_app/internal/models"
	"github.com/DesignDeskHQ/design_desk_app/internal/utils/mapping"
)

const paymentColumns = `payment_id, studio_id, amount, quote_number, method, paid_at,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	db *pgxpool.Pool
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{db: db}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.StudioID,
		&m.Amount,
		&m.QuoteNumber,
		&m.Method,
		&m.PaidAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
        INSERT INTO payments (payment_id, studio_id, amount, quote_number, method, paid_at,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		m.PaymentID,
		m.StudioID,
		m.Amount,
		m.QuoteNumber,
		m.Method,
		m.PaidAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("payment already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, studioID, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE studio_id = $1 AND payment_id = $2;`
	m, err := scanPayment(r.db.QueryRow(ctx, query, studioID, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	d := mapping.ToDomainPayment(m)
	return &d, nil
}

func (r *PgxPaymentRepository) ListPaymentsByStudio(ctx context.Context, studioID string, limit int, offset int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE studio_id = $1 ORDER BY created_at, payment_id LIMIT $2 OFFSET $3;`
	rows, err := r.db.Query(ctx, query, studioID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	modelPayments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		modelPayments = append(modelPayments, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

func (r *PgxPaymentRepository) FindAllPaymentsByStudio(ctx context.Context, studioID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE studio_id = $1 ORDER BY created_at, payment_id;`
	rows, err := r.db.Query(ctx, query, studioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	modelPayments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		modelPayments = append(modelPayments, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
        UPDATE payments
        SET amount = $1, quote_number = $2, method = $3, paid_at = $4, last_updated_at = $5, last_updated_by = $6
        WHERE studio_id = $7 AND payment_id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Amount,
		m.QuoteNumber,
		m.Method,
		m.PaidAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.StudioID,
		m.PaymentID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update payment query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, studioID, paymentID string) error {
	query := `DELETE FROM payments WHERE studio_id = $1 AND payment_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, studioID, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
