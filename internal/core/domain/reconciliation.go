package domain

import "github.com/shopspring/decimal"

// MatchConfidence is a discrete bucket summarizing how certain a match is,
// derived from deterministic rules rather than a numeric probability.
type MatchConfidence string

const (
	ConfidenceHigh   MatchConfidence = "high"
	ConfidenceMedium MatchConfidence = "medium"
	ConfidenceLow    MatchConfidence = "low"
	// ConfidenceNone marks a transaction that matched no payment at all after
	// the full assignment pass. It is never used for an individually
	// disqualified candidate pair.
	ConfidenceNone MatchConfidence = "none"
)

// ReconciliationMatch pairs one bank transaction with at most one payment.
// Matches are derived views: they are recomputed on every reconciliation run
// and never persisted.
type ReconciliationMatch struct {
	Transaction     BankTransaction `json:"transaction"`
	Payment         *Payment        `json:"payment,omitempty"` // nil => unmatched
	MatchConfidence MatchConfidence `json:"matchConfidence"`
	MatchReason     string          `json:"matchReason"` // Rendered verbatim in the UI
}

// MatchCounts breaks matched transactions down by confidence tier.
type MatchCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// ReconciliationSummary is the roll-up over a set of matches.
type ReconciliationSummary struct {
	TotalTransactions int             `json:"totalTransactions"`
	Matched           MatchCounts     `json:"matched"`
	Unmatched         int             `json:"unmatched"`
	TotalCredits      decimal.Decimal `json:"totalCredits"`
	MatchedAmount     decimal.Decimal `json:"matchedAmount"`
	UnmatchedAmount   decimal.Decimal `json:"unmatchedAmount"`
}
