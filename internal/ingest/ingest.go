// Package ingest normalizes raw bank statement rows (from a provider feed or
// an uploaded CSV export) into canonical bank transactions. Parsing is a pure
// transform: rows that fail to parse are reported individually and never
// abort the batch, and deduplication against previously ingested rows is the
// caller's responsibility.
package ingest

import (
	"fmt"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
)

// RowError describes a single statement row that could not be parsed.
type RowError struct {
	Row    int    `json:"row"` // 1-based row number in the source, header included
	Reason string `json:"reason"`
}

func (e RowError) String() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// Result carries the transactions recovered from a source alongside the rows
// that were rejected. A partially malformed statement still reconciles the
// valid subset.
type Result struct {
	Transactions []domain.BankTransaction
	Errors       []RowError
}

// Warnings renders the row errors as user-facing strings.
func (r Result) Warnings() []string {
	if len(r.Errors) == 0 {
		return nil
	}
	warnings := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		warnings[i] = e.String()
	}
	return warnings
}
