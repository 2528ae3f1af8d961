package repositories

import (
	"context"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
)

// BankTransactionReader defines read operations for bank transaction data
type BankTransactionReader interface {
	// FindTransactionByID retrieves a specific bank transaction by its ID.
	FindTransactionByID(ctx context.Context, studioID, transactionID string) (*domain.BankTransaction, error)

	// ListTransactionsByStudio retrieves a paginated list of transactions for a studio
	// using token-based pagination, ordered by date then creation time.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactionsByStudio(ctx context.Context, studioID string, limit int, nextToken *string) ([]domain.BankTransaction, *string, error)

	// FindAllTransactionsByStudio retrieves every transaction for a studio in
	// ingestion order, for reconciliation runs.
	FindAllTransactionsByStudio(ctx context.Context, studioID string) ([]domain.BankTransaction, error)
}

// BankTransactionWriter defines write operations for bank transaction data
type BankTransactionWriter interface {
	// SaveTransactions persists a batch of bank transactions. Rows that already
	// exist for the studio (same reference id, or same date/amount/description)
	// are skipped. It returns the number of newly inserted rows.
	SaveTransactions(ctx context.Context, transactions []domain.BankTransaction) (int, error)
}

// BankTransactionRepositoryFacade combines all bank-transaction repository interfaces
// This is a facade for clients that need access to all operations
type BankTransactionRepositoryFacade interface {
	BankTransactionReader
	BankTransactionWriter
	TransactionManager
}
