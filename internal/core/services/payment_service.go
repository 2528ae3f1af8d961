package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DesignDeskHQ/design_desk_app/internal/apperrors"
	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	portsrepo "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/repositories"
	portssvc "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/services"
	"github.com/DesignDeskHQ/design_desk_app/internal/dto"
	"github.com/DesignDeskHQ/design_desk_app/internal/middleware"
)

// PaymentService handles business logic related to recorded payments.
type PaymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	studioSvc   portssvc.StudioAuthorizerSvc
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(pr portsrepo.PaymentRepositoryFacade, studioSvc portssvc.StudioAuthorizerSvc) portssvc.PaymentSvcFacade {
	return &PaymentService{
		paymentRepo: pr,
		studioSvc:   studioSvc,
	}
}

var _ portssvc.PaymentSvcFacade = (*PaymentService)(nil)

// CreatePayment records a new payment for a studio.
func (s *PaymentService) CreatePayment(ctx context.Context, studioID string, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.studioSvc.AuthorizeUserAction(ctx, creatorUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.Amount.Sign() <= 0 {
		return nil, apperrors.NewBadRequestError("payment amount must be positive")
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		StudioID:    studioID,
		Amount:      req.Amount,
		QuoteNumber: req.QuoteNumber,
		Method:      req.Method,
		PaidAt:      req.PaidAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		logger.Error("Failed to save payment in repository", slog.String("error", err.Error()), slog.String("studio_id", studioID))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	logger.Info("Payment created", slog.String("payment_id", payment.PaymentID), slog.String("studio_id", studioID))
	return &payment, nil
}

// GetPaymentByID retrieves a payment by ID.
func (s *PaymentService) GetPaymentByID(ctx context.Context, studioID, paymentID string, requestingUserID string) (*domain.Payment, error) {
	if err := s.studioSvc.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindPaymentByID(ctx, studioID, paymentID)
}

// ListPayments retrieves a paginated list of payments for a studio.
func (s *PaymentService) ListPayments(ctx context.Context, studioID string, limit, offset int, requestingUserID string) ([]domain.Payment, error) {
	if err := s.studioSvc.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListPaymentsByStudio(ctx, studioID, limit, offset)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

// UpdatePayment updates an existing payment.
func (s *PaymentService) UpdatePayment(ctx context.Context, studioID, paymentID string, req dto.UpdatePaymentRequest, requestingUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.studioSvc.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, studioID, paymentID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.Sign() <= 0 {
			return nil, apperrors.NewBadRequestError("payment amount must be positive")
		}
		payment.Amount = *req.Amount
	}
	if req.QuoteNumber != nil {
		payment.QuoteNumber = *req.QuoteNumber
	}
	if req.Method != nil {
		payment.Method = *req.Method
	}
	if req.PaidAt != nil {
		payment.PaidAt = req.PaidAt
	}
	payment.LastUpdatedAt = time.Now()
	payment.LastUpdatedBy = requestingUserID

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		logger.Error("Failed to update payment in repository", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	return payment, nil
}

// DeletePayment removes a payment.
func (s *PaymentService) DeletePayment(ctx context.Context, studioID, paymentID string, requestingUserID string) error {
	if err := s.studioSvc.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return err
	}
	return s.paymentRepo.DeletePayment(ctx, studioID, paymentID)
}
