package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a recorded client payment expected to appear in the bank feed.
type Payment struct {
	PaymentID string          `json:"paymentID"` // Primary Key (UUID)
	StudioID  string          `json:"studioID"`  // FK -> studios.studio_id
	Amount    decimal.Decimal `json:"amount"`    // Always positive; the expected credit amount
	// QuoteNumber is the human-readable invoice/quote identifier, e.g. "1042".
	QuoteNumber string `json:"quoteNumber"`
	Method      string `json:"method"` // Payment channel label, e.g. "INTERAC", "CHEQUE", "WIRE"
	// PaidAt is the date the payment was recorded internally; nil if unknown.
	PaidAt *time.Time `json:"paidAt,omitempty"`
	AuditFields
}
