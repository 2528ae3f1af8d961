package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DesignDeskHQ/design_desk_app/internal/apperrors"
	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	portsrepo "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/repositories"
	portssvc "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/services"
	"github.com/DesignDeskHQ/design_desk_app/internal/dto"
	"github.com/DesignDeskHQ/design_desk_app/internal/ingest"
	"github.com/DesignDeskHQ/design_desk_app/internal/middleware"
)

// StatementService handles statement ingestion and transaction listing.
type StatementService struct {
	txnRepo   portsrepo.BankTransactionRepositoryFacade
	studioSvc portssvc.StudioAuthorizerSvc
}

// NewStatementService creates a new StatementService.
func NewStatementService(tr portsrepo.BankTransactionRepositoryFacade, studioSvc portssvc.StudioAuthorizerSvc) portssvc.StatementSvcFacade {
	return &StatementService{
		txnRepo:   tr,
		studioSvc: studioSvc,
	}
}

var _ portssvc.StatementSvcFacade = (*StatementService)(nil)

// IngestCSV parses a CSV statement export and stores its transactions for the
// studio. Malformed rows are skipped and reported back as warnings; a
// malformed file is rejected outright.
func (s *StatementService) IngestCSV(ctx context.Context, studioID string, csv io.Reader, requestingUserID string) (*dto.StatementUploadResponse, error) {
	if err := s.studioSvc.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	result, err := ingest.ParseCSV(csv)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("malformed CSV statement: %v", err))
	}

	return s.store(ctx, studioID, result, requestingUserID)
}

// IngestFeed stores transactions pushed as structured feed rows.
func (s *StatementService) IngestFeed(ctx context.Context, studioID string, rows []ingest.FeedRow, requestingUserID string) (*dto.StatementUploadResponse, error) {
	if err := s.studioSvc.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	result := ingest.ParseFeed(rows)
	return s.store(ctx, studioID, result, requestingUserID)
}

func (s *StatementService) store(ctx context.Context, studioID string, result ingest.Result, requestingUserID string) (*dto.StatementUploadResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	txns := make([]domain.BankTransaction, len(result.Transactions))
	for i, txn := range result.Transactions {
		txn.TransactionID = uuid.NewString()
		txn.StudioID = studioID
		txn.AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		}
		txns[i] = txn
	}

	inserted, err := s.txnRepo.SaveTransactions(ctx, txns)
	if err != nil {
		logger.Error("Failed to store bank transactions", slog.String("error", err.Error()), slog.String("studio_id", studioID))
		return nil, fmt.Errorf("failed to store bank transactions: %w", err)
	}

	resp := &dto.StatementUploadResponse{
		Received:   len(result.Transactions) + len(result.Errors),
		Inserted:   inserted,
		Duplicates: len(txns) - inserted,
		Warnings:   result.Warnings(),
	}

	logger.Info("Statement ingested",
		slog.String("studio_id", studioID),
		slog.Int("received", resp.Received),
		slog.Int("inserted", resp.Inserted),
		slog.Int("duplicates", resp.Duplicates),
		slog.Int("skipped_rows", len(result.Errors)),
	)
	return resp, nil
}

// ListTransactions retrieves a page of stored transactions for a studio.
func (s *StatementService) ListTransactions(ctx context.Context, studioID string, limit int, nextToken *string, requestingUserID string) ([]domain.BankTransaction, *string, error) {
	if err := s.studioSvc.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}

	txns, newToken, err := s.txnRepo.ListTransactionsByStudio(ctx, studioID, limit, nextToken)
	if err != nil {
		return nil, nil, err
	}
	if txns == nil {
		txns = []domain.BankTransaction{}
	}
	return txns, newToken, nil
}

// GetTransaction retrieves a single stored transaction by its ID.
func (s *StatementService) GetTransaction(ctx context.Context, studioID, transactionID, requestingUserID string) (*domain.BankTransaction, error) {
	if err := s.studioSvc.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.txnRepo.FindTransactionByID(ctx, studioID, transactionID)
}
