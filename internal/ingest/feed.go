package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
)

// feedDateFormat is the calendar-date format the bank provider emits.
const feedDateFormat = "2006-01-02"

// FeedRow is one structured transaction row as returned by the bank provider
// API. Amounts arrive as strings to preserve decimal precision across the
// wire.
type FeedRow struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description"`
	Amount      string  `json:"amount" binding:"required"`
	ReferenceID *string `json:"referenceID,omitempty"`
}

// ParseFeed normalizes provider feed rows into bank transactions. Rows with
// an unparsable date or amount are reported in Result.Errors and skipped.
func ParseFeed(rows []FeedRow) Result {
	var result Result
	for i, row := range rows {
		rowNum := i + 1
		date, err := time.Parse(feedDateFormat, strings.TrimSpace(row.Date))
		if err != nil {
			result.Errors = append(result.Errors, RowError{
				Row:    rowNum,
				Reason: fmt.Sprintf("parsing date %q: %v", row.Date, err),
			})
			continue
		}
		amount, err := ParseAmount(row.Amount)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Reason: err.Error()})
			continue
		}

		txn := domain.BankTransaction{
			Date:        date,
			Description: strings.TrimSpace(row.Description),
			Amount:      amount,
		}
		if row.ReferenceID != nil && strings.TrimSpace(*row.ReferenceID) != "" {
			ref := strings.TrimSpace(*row.ReferenceID)
			txn.ReferenceID = &ref
		}
		result.Transactions = append(result.Transactions, txn)
	}
	return result
}
