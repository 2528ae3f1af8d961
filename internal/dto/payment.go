package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
)

// CreatePaymentRequest defines data for recording a new payment.
type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	QuoteNumber string          `json:"quoteNumber" binding:"required,notblank"`
	Method      string          `json:"method"`
	PaidAt      *time.Time      `json:"paidAt"`
}

// UpdatePaymentRequest defines data allowed for updating a payment.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdatePaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	QuoteNumber *string          `json:"quoteNumber"`
	Method      *string          `json:"method"`
	PaidAt      *time.Time       `json:"paidAt"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	StudioID    string          `json:"studioID"`
	Amount      decimal.Decimal `json:"amount"`
	QuoteNumber string          `json:"quoteNumber"`
	Method      string          `json:"method,omitempty"`
	PaidAt      *time.Time      `json:"paidAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		StudioID:    p.StudioID,
		Amount:      p.Amount,
		QuoteNumber: p.QuoteNumber,
		Method:      p.Method,
		PaidAt:      p.PaidAt,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
	}
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListPaymentsResponse wraps the list of payments.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToListPaymentsResponse converts a slice of domain.Payment to DTO.
func ToListPaymentsResponse(ps []domain.Payment) ListPaymentsResponse {
	list := make([]PaymentResponse, len(ps))
	for i, p := range ps {
		list[i] = ToPaymentResponse(&p)
	}
	return ListPaymentsResponse{Payments: list}
}
