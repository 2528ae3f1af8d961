package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Payment represents a recorded client payment row.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	StudioID    string          `db:"studio_id"`
	Amount      decimal.Decimal `db:"amount"`
	QuoteNumber string          `db:"quote_number"`
	Method      string          `db:"method"`
	PaidAt      sql.NullTime    `db:"paid_at"`
	AuditFields
}
