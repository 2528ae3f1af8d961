package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction represents a statement line row. Amount is signed, credits
// positive and debits negative.
type BankTransaction struct {
	TransactionID string          `db:"transaction_id"`
	StudioID      string          `db:"studio_id"`
	Date          time.Time       `db:"transaction_date"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	ReferenceID   sql.NullString  `db:"reference_id"`
	AuditFields
}
