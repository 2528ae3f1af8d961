package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
)

// Fixed column layout of the supported bank CSV export.
const (
	csvDateFormat = "01/02/2006"
	csvNumFields  = 4
	csvColDate    = 0
	csvColDesc    = 1
	csvColDebit   = 2
	csvColCredit  = 3
)

// ParseCSV reads a fixed-column bank CSV export (Date, Description, Debit,
// Credit; header row required). Rows that fail to parse a date or amount are
// collected in Result.Errors; a CSV that cannot be read at all is a fatal
// error.
func ParseCSV(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = csvNumFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) <= 1 {
		return Result{}, nil
	}

	var result Result
	for i, rec := range records[1:] {
		rowNum := i + 2 // 1-based, header is row 1
		txn, err := parseCSVRow(rec)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Reason: err.Error()})
			continue
		}
		result.Transactions = append(result.Transactions, txn)
	}
	return result, nil
}

func parseCSVRow(rec []string) (domain.BankTransaction, error) {
	date, err := time.Parse(csvDateFormat, strings.TrimSpace(rec[csvColDate]))
	if err != nil {
		return domain.BankTransaction{}, fmt.Errorf("parsing date %q: %w", rec[csvColDate], err)
	}

	debit := strings.TrimSpace(rec[csvColDebit])
	credit := strings.TrimSpace(rec[csvColCredit])
	var amountStr string
	var isDebit bool
	switch {
	case debit != "" && credit != "":
		return domain.BankTransaction{}, fmt.Errorf("row has both debit and credit amounts")
	case debit != "":
		amountStr, isDebit = debit, true
	case credit != "":
		amountStr = credit
	default:
		return domain.BankTransaction{}, fmt.Errorf("row has neither debit nor credit amount")
	}

	amount, err := ParseAmount(amountStr)
	if err != nil {
		return domain.BankTransaction{}, err
	}
	// Debit column values are magnitudes; the signed convention is
	// negative = debit regardless of how the export prints them.
	if isDebit && amount.Sign() > 0 {
		amount = amount.Neg()
	}

	return domain.BankTransaction{
		Date:        date,
		Description: strings.TrimSpace(rec[csvColDesc]),
		Amount:      amount,
	}, nil
}
