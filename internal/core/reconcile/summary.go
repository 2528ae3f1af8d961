package reconcile

import (
	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summarize rolls a resolved match list into totals by confidence tier and by
// amount. Every processed transaction contributes to TotalCredits; only
// high/medium/low matches contribute to MatchedAmount, the remainder lands in
// UnmatchedAmount. Pure reduction, no rounding beyond the precision the
// amounts already carry.
func Summarize(matches []domain.ReconciliationMatch) domain.ReconciliationSummary {
	summary := domain.ReconciliationSummary{
		TotalTransactions: len(matches),
		TotalCredits:      decimal.Zero,
		MatchedAmount:     decimal.Zero,
		UnmatchedAmount:   decimal.Zero,
	}

	for _, m := range matches {
		summary.TotalCredits = summary.TotalCredits.Add(m.Transaction.Amount)
		switch m.MatchConfidence {
		case domain.ConfidenceHigh:
			summary.Matched.High++
			summary.MatchedAmount = summary.MatchedAmount.Add(m.Transaction.Amount)
		case domain.ConfidenceMedium:
			summary.Matched.Medium++
			summary.MatchedAmount = summary.MatchedAmount.Add(m.Transaction.Amount)
		case domain.ConfidenceLow:
			summary.Matched.Low++
			summary.MatchedAmount = summary.MatchedAmount.Add(m.Transaction.Amount)
		default:
			summary.Unmatched++
			summary.UnmatchedAmount = summary.UnmatchedAmount.Add(m.Transaction.Amount)
		}
	}
	return summary
}
