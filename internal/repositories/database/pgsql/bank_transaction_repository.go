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
	"github.com/DesignDeskHQ/design_desk_app/internal/utils/pagination"
)

const bankTxnColumns = `transaction_id, studio_id, transaction_date, description, amount, reference_id,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxBankTransactionRepository struct {
	BaseRepository
}

func newPgxBankTransactionRepository(db *pgxpool.Pool) portsrepo.BankTransactionRepositoryFacade {
	return &PgxBankTransactionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.BankTransactionRepositoryFacade = (*PgxBankTransactionRepository)(nil)

func scanBankTransaction(row pgx.Row) (models.BankTransaction, error) {
	var m models.BankTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.StudioID,
		&m.Date,
		&m.Description,
		&m.Amount,
		&m.ReferenceID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransactions inserts a batch of transactions inside one database
// transaction. Duplicate rows (unique index on studio/reference id, or on the
// studio/date/amount/description tuple for rows without one) are skipped via
// ON CONFLICT DO NOTHING. Returns the number of newly inserted rows.
func (r *PgxBankTransactionRepository) SaveTransactions(ctx context.Context, transactions []domain.BankTransaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	query := `
        INSERT INTO bank_transactions (transaction_id, studio_id, transaction_date, description, amount, reference_id,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT DO NOTHING;
    `
	inserted := 0
	for _, txn := range transactions {
		m := mapping.ToModelBankTransaction(txn)
		cmdTag, err := tx.Exec(ctx, query,
			m.TransactionID,
			m.StudioID,
			m.Date,
			m.Description,
			m.Amount,
			m.ReferenceID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert bank transaction: %w", err)
		}
		inserted += int(cmdTag.RowsAffected())
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *PgxBankTransactionRepository) FindTransactionByID(ctx context.Context, studioID, transactionID string) (*domain.BankTransaction, error) {
	query := `SELECT ` + bankTxnColumns + ` FROM bank_transactions WHERE studio_id = $1 AND transaction_id = $2;`
	m, err := scanBankTransaction(r.Pool.QueryRow(ctx, query, studioID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank transaction %s: %w", transactionID, err)
	}
	d := mapping.ToDomainBankTransaction(m)
	return &d, nil
}

func (r *PgxBankTransactionRepository) ListTransactionsByStudio(ctx context.Context, studioID string, limit int, nextToken *string) ([]domain.BankTransaction, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + bankTxnColumns + ` FROM bank_transactions WHERE studio_id = $1`
	args := []interface{}{studioID}

	if nextToken != nil && *nextToken != "" {
		txnDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewBadRequestError(err.Error())
		}
		query += ` AND (transaction_date, created_at) > ($2, $3)`
		args = append(args, txnDate, createdAt)
	}

	// Fetch one extra row to detect whether another page exists.
	query += fmt.Sprintf(` ORDER BY transaction_date, created_at LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query bank transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.BankTransaction{}
	for rows.Next() {
		m, err := scanBankTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan bank transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating bank transaction rows: %w", rows.Err())
	}

	var newNextToken *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		newNextToken = &token
	}

	return mapping.ToDomainBankTransactionSlice(modelTxns), newNextToken, nil
}

func (r *PgxBankTransactionRepository) FindAllTransactionsByStudio(ctx context.Context, studioID string) ([]domain.BankTransaction, error) {
	query := `SELECT ` + bankTxnColumns + ` FROM bank_transactions WHERE studio_id = $1 ORDER BY created_at, transaction_id;`
	rows, err := r.Pool.Query(ctx, query, studioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.BankTransaction{}
	for rows.Next() {
		m, err := scanBankTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bank transaction rows: %w", rows.Err())
	}

	return mapping.ToDomainBankTransactionSlice(modelTxns), nil
}
