package mapping

import (
	"database/sql"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	"github.com/DesignDeskHQ/design_desk_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	m := models.Payment{
		PaymentID:   d.PaymentID,
		StudioID:    d.StudioID,
		Amount:      d.Amount,
		QuoteNumber: d.QuoteNumber,
		Method:      d.Method,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.PaidAt != nil {
		m.PaidAt = sql.NullTime{Time: *d.PaidAt, Valid: true}
	}
	return m
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	d := domain.Payment{
		PaymentID:   m.PaymentID,
		StudioID:    m.StudioID,
		Amount:      m.Amount,
		QuoteNumber: m.QuoteNumber,
		Method:      m.Method,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.PaidAt.Valid {
		t := m.PaidAt.Time
		d.PaidAt = &t
	}
	return d
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
