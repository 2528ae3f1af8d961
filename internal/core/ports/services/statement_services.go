package services

import (
	"context"
	"io"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	"github.com/DesignDeskHQ/design_desk_app/internal/dto"
	"github.com/DesignDeskHQ/design_desk_app/internal/ingest"
)

// StatementIngestSvc defines operations for ingesting bank statements.
type StatementIngestSvc interface {
	// IngestCSV parses a CSV statement export and stores its transactions for
	// the studio. Malformed rows are skipped and reported as warnings.
	IngestCSV(ctx context.Context, studioID string, csv io.Reader, requestingUserID string) (*dto.StatementUploadResponse, error)

	// IngestFeed stores transactions pushed as structured feed rows.
	IngestFeed(ctx context.Context, studioID string, rows []ingest.FeedRow, requestingUserID string) (*dto.StatementUploadResponse, error)
}

// StatementReaderSvc defines read operations for stored transactions.
type StatementReaderSvc interface {
	// ListTransactions retrieves a page of transactions for a studio.
	ListTransactions(ctx context.Context, studioID string, limit int, nextToken *string, requestingUserID string) ([]domain.BankTransaction, *string, error)

	// GetTransaction retrieves a single stored transaction by its ID.
	GetTransaction(ctx context.Context, studioID, transactionID, requestingUserID string) (*domain.BankTransaction, error)
}

// StatementSvcFacade combines all statement-related service interfaces
type StatementSvcFacade interface {
	StatementIngestSvc
	StatementReaderSvc
}
