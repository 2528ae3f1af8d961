// Package reconcile implements deterministic, rule-based matching of imported
// bank transactions against recorded payments. Every function here is a pure
// transform of its inputs: no I/O, no locks, no package state. Handlers, batch
// jobs and tests all call the same entry points.
package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
)

// Tier weights for candidate ranking. Within a tier the closer payment date
// wins, so the weight gap must exceed any plausible date delta.
const (
	weightHigh   = 1000
	weightMedium = 100
	weightLow    = 10
)

// Date-delta thresholds (in calendar days) for tier assignment.
const (
	highMaxDeltaDays   = 3
	mediumMaxDeltaDays = 10
)

// score is the outcome of evaluating one (transaction, payment) candidate pair.
type score struct {
	Tier domain.MatchConfidence
	// Rank orders candidates inside the assignment engine; higher is better.
	Rank   int
	Reason string
}

// scorePair evaluates a single candidate pair. The second return value is
// false when the pair is categorically ineligible: debit transactions never
// match, and amounts must be equal to the cent.
func scorePair(txn domain.BankTransaction, payment domain.Payment) (score, bool) {
	if txn.Amount.Sign() <= 0 {
		return score{}, false
	}
	if !txn.Amount.Equal(payment.Amount) {
		return score{}, false
	}

	quoteHit := quoteNumberInDescription(payment.QuoteNumber, txn.Description)

	// A payment without a recorded date is treated as delta 0 for ranking,
	// but it can only reach the high tier through a quote-number hit.
	deltaDays := 0
	if payment.PaidAt != nil {
		deltaDays = dateDeltaDays(txn.Date, *payment.PaidAt)
	}

	var tier domain.MatchConfidence
	switch {
	case quoteHit && deltaDays <= highMaxDeltaDays:
		tier = domain.ConfidenceHigh
	case payment.PaidAt != nil && deltaDays <= mediumMaxDeltaDays:
		tier = domain.ConfidenceMedium
	default:
		tier = domain.ConfidenceLow
	}

	return score{
		Tier:   tier,
		Rank:   tierWeight(tier) - deltaDays,
		Reason: buildReason(payment, quoteHit, deltaDays),
	}, true
}

func tierWeight(tier domain.MatchConfidence) int {
	switch tier {
	case domain.ConfidenceHigh:
		return weightHigh
	case domain.ConfidenceMedium:
		return weightMedium
	default:
		return weightLow
	}
}

// quoteNumberInDescription reports whether the payment's quote number, or its
// digit-only normalization, appears in the bank narrative. Bank descriptions
// often mangle formatting ("INV#1042", "REF 1042"), so the digit form catches
// quote numbers like "Q-1042".
func quoteNumberInDescription(quoteNumber, description string) bool {
	quote := strings.TrimSpace(quoteNumber)
	if quote == "" {
		return false
	}
	desc := strings.ToUpper(description)
	if strings.Contains(desc, strings.ToUpper(quote)) {
		return true
	}
	digits := digitsOnly(quote)
	return digits != "" && strings.Contains(desc, digits)
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// dateDeltaDays returns the absolute distance between two calendar dates in
// whole days, ignoring any time-of-day component.
func dateDeltaDays(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	delta := int(a.Sub(b).Hours() / 24)
	if delta < 0 {
		delta = -delta
	}
	return delta
}

// buildReason renders the human-readable explanation shown verbatim in the
// UI, citing which conditions matched.
func buildReason(payment domain.Payment, quoteHit bool, deltaDays int) string {
	parts := []string{"exact amount"}
	if quoteHit {
		parts = append(parts, fmt.Sprintf("quote #%s in description", payment.QuoteNumber))
	}
	switch {
	case payment.PaidAt == nil:
		parts = append(parts, "no recorded payment date")
	case deltaDays == 0:
		parts = append(parts, "same-day")
	case deltaDays == 1:
		parts = append(parts, "1 day apart")
	default:
		parts = append(parts, fmt.Sprintf("%d days apart", deltaDays))
	}
	return strings.Join(parts, " + ")
}
