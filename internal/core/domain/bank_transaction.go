package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is one row from a bank source (provider feed or CSV export).
// Transactions are immutable once ingested; re-ingesting the same source must
// not duplicate rows (dedup is keyed on ReferenceID when the bank supplies
// one, otherwise on the (date, amount, description) triple).
type BankTransaction struct {
	TransactionID string `json:"transactionID"` // Primary Key (UUID)
	StudioID      string `json:"studioID"`      // FK -> studios.studio_id
	// Date is a timezone-naive calendar date (UTC midnight, no time-of-day).
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // Signed; positive = credit, negative = debit
	// ReferenceID is the bank-assigned transaction id, used only for dedup.
	ReferenceID *string `json:"referenceID,omitempty"`
	AuditFields
}
