package services

import (
	"context"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
)

// ReconciliationSvcFacade defines the reconciliation report operations.
type ReconciliationSvcFacade interface {
	// Reconcile matches a studio's stored bank credits against its recorded
	// payments and returns the per-transaction matches plus a summary.
	Reconcile(ctx context.Context, studioID string, requestingUserID string) ([]domain.ReconciliationMatch, domain.ReconciliationSummary, error)
}
