package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	portsrepo "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/repositories"
	portssvc "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/services"
	"github.com/DesignDeskHQ/design_desk_app/internal/core/reconcile"
	"github.com/DesignDeskHQ/design_desk_app/internal/middleware"
)

// ReconciliationService matches a studio's stored bank transactions against
// its recorded payments. The run itself is pure; this service only loads the
// inputs and delegates to the reconcile package.
type ReconciliationService struct {
	txnRepo     portsrepo.BankTransactionRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	studioSvc   portssvc.StudioAuthorizerSvc
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(tr portsrepo.BankTransactionRepositoryFacade, pr portsrepo.PaymentRepositoryFacade, studioSvc portssvc.StudioAuthorizerSvc) portssvc.ReconciliationSvcFacade {
	return &ReconciliationService{
		txnRepo:     tr,
		paymentRepo: pr,
		studioSvc:   studioSvc,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*ReconciliationService)(nil)

// Reconcile loads all transactions and payments for the studio, runs the
// matcher, and returns the per-transaction matches plus a summary.
func (s *ReconciliationService) Reconcile(ctx context.Context, studioID string, requestingUserID string) ([]domain.ReconciliationMatch, domain.ReconciliationSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.studioSvc.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, domain.ReconciliationSummary{}, err
	}

	txns, err := s.txnRepo.FindAllTransactionsByStudio(ctx, studioID)
	if err != nil {
		logger.Error("Failed to load transactions for reconciliation", slog.String("error", err.Error()), slog.String("studio_id", studioID))
		return nil, domain.ReconciliationSummary{}, fmt.Errorf("failed to load transactions: %w", err)
	}

	payments, err := s.paymentRepo.FindAllPaymentsByStudio(ctx, studioID)
	if err != nil {
		logger.Error("Failed to load payments for reconciliation", slog.String("error", err.Error()), slog.String("studio_id", studioID))
		return nil, domain.ReconciliationSummary{}, fmt.Errorf("failed to load payments: %w", err)
	}

	matches := reconcile.MatchTransactionsWithPayments(txns, payments)
	summary := reconcile.Summarize(matches)

	logger.Info("Reconciliation run completed",
		slog.String("studio_id", studioID),
		slog.Int("transactions", len(txns)),
		slog.Int("payments", len(payments)),
		slog.Int("credits", summary.TotalTransactions),
		slog.Int("unmatched", summary.Unmatched),
	)
	return matches, summary, nil
}
