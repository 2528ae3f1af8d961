package repositories

import (
	"context"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its ID.
	FindPaymentByID(ctx context.Context, studioID, paymentID string) (*domain.Payment, error)

	// ListPaymentsByStudio retrieves a paginated list of payments for a studio.
	ListPaymentsByStudio(ctx context.Context, studioID string, limit int, offset int) ([]domain.Payment, error)

	// FindAllPaymentsByStudio retrieves every payment for a studio, for
	// reconciliation runs.
	FindAllPaymentsByStudio(ctx context.Context, studioID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a new payment.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// UpdatePayment updates an existing payment's details.
	UpdatePayment(ctx context.Context, payment domain.Payment) error

	// DeletePayment removes a payment.
	DeletePayment(ctx context.Context, studioID, paymentID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
// This is a facade for clients that need access to all operations
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
