package services

import (
	"context"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	"github.com/DesignDeskHQ/design_desk_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment by ID.
	GetPaymentByID(ctx context.Context, studioID, paymentID string, requestingUserID string) (*domain.Payment, error)

	// ListPayments retrieves a paginated list of payments for a studio.
	ListPayments(ctx context.Context, studioID string, limit, offset int, requestingUserID string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// CreatePayment records a new payment for a studio.
	CreatePayment(ctx context.Context, studioID string, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)

	// UpdatePayment updates an existing payment.
	UpdatePayment(ctx context.Context, studioID, paymentID string, req dto.UpdatePaymentRequest, requestingUserID string) (*domain.Payment, error)

	// DeletePayment removes a payment.
	DeletePayment(ctx context.Context, studioID, paymentID string, requestingUserID string) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
