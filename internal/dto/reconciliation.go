package dto

import (
	"github.com/shopspring/decimal"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
)

// ReconciliationMatchResponse pairs a credit transaction with its matched
// payment, if any. Payment is nil for unmatched transactions.
type ReconciliationMatchResponse struct {
	Transaction     BankTransactionResponse `json:"transaction"`
	Payment         *PaymentResponse        `json:"payment,omitempty"`
	MatchConfidence string                  `json:"matchConfidence"`
	MatchReason     string                  `json:"matchReason"`
}

// MatchCountsResponse breaks matched transactions down by confidence tier.
type MatchCountsResponse struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// ReconciliationSummaryResponse aggregates a reconciliation run.
type ReconciliationSummaryResponse struct {
	TotalTransactions int                 `json:"totalTransactions"`
	Matched           MatchCountsResponse `json:"matched"`
	Unmatched         int                 `json:"unmatched"`
	TotalCredits      decimal.Decimal     `json:"totalCredits"`
	MatchedAmount     decimal.Decimal     `json:"matchedAmount"`
	UnmatchedAmount   decimal.Decimal     `json:"unmatchedAmount"`
}

// ReconciliationResponse is the full reconciliation report for a studio.
type ReconciliationResponse struct {
	Matches []ReconciliationMatchResponse `json:"matches"`
	Summary ReconciliationSummaryResponse `json:"summary"`
}

// ToReconciliationMatchResponse converts a domain.ReconciliationMatch to DTO.
func ToReconciliationMatchResponse(m *domain.ReconciliationMatch) ReconciliationMatchResponse {
	resp := ReconciliationMatchResponse{
		Transaction:     ToBankTransactionResponse(&m.Transaction),
		MatchConfidence: string(m.MatchConfidence),
		MatchReason:     m.MatchReason,
	}
	if m.Payment != nil {
		p := ToPaymentResponse(m.Payment)
		resp.Payment = &p
	}
	return resp
}

// ToReconciliationResponse converts matches and a summary to the report DTO.
func ToReconciliationResponse(matches []domain.ReconciliationMatch, summary domain.ReconciliationSummary) ReconciliationResponse {
	list := make([]ReconciliationMatchResponse, len(matches))
	for i := range matches {
		list[i] = ToReconciliationMatchResponse(&matches[i])
	}
	return ReconciliationResponse{
		Matches: list,
		Summary: ReconciliationSummaryResponse{
			TotalTransactions: summary.TotalTransactions,
			Matched: MatchCountsResponse{
				High:   summary.Matched.High,
				Medium: summary.Matched.Medium,
				Low:    summary.Matched.Low,
			},
			Unmatched:       summary.Unmatched,
			TotalCredits:    summary.TotalCredits,
			MatchedAmount:   summary.MatchedAmount,
			UnmatchedAmount: summary.UnmatchedAmount,
		},
	}
}
