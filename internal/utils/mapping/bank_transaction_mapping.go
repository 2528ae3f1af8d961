package mapping

import (
	"database/sql"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	"github.com/DesignDeskHQ/design_desk_app/internal/models"
)

// ToModelBankTransaction converts a domain BankTransaction to a model BankTransaction
func ToModelBankTransaction(d domain.BankTransaction) models.BankTransaction {
	m := models.BankTransaction{
		TransactionID: d.TransactionID,
		StudioID:      d.StudioID,
		Date:          d.Date,
		Description:   d.Description,
		Amount:        d.Amount,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.ReferenceID != nil {
		m.ReferenceID = sql.NullString{String: *d.ReferenceID, Valid: true}
	}
	return m
}

// ToDomainBankTransaction converts a model BankTransaction to a domain BankTransaction
func ToDomainBankTransaction(m models.BankTransaction) domain.BankTransaction {
	d := domain.BankTransaction{
		TransactionID: m.TransactionID,
		StudioID:      m.StudioID,
		Date:          m.Date,
		Description:   m.Description,
		Amount:        m.Amount,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.ReferenceID.Valid {
		ref := m.ReferenceID.String
		d.ReferenceID = &ref
	}
	return d
}

// ToDomainBankTransactionSlice converts a slice of model BankTransactions to domain BankTransactions
func ToDomainBankTransactionSlice(ms []models.BankTransaction) []domain.BankTransaction {
	ds := make([]domain.BankTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankTransaction(m)
	}
	return ds
}
