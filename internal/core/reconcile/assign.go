package reconcile

import (
	"sort"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
)

// unmatchedReason is emitted for credits no payment could claim.
const unmatchedReason = "No matching payment found"

// candidate is one scored (transaction, payment) pairing considered before
// the engine decides whether to commit it.
type candidate struct {
	txnIdx     int
	paymentIdx int
	score      score
}

// MatchTransactionsWithPayments resolves a one-to-one (or one-to-none)
// assignment between bank transactions and payments using greedy best-first
// selection over all scored candidate pairs.
//
// This is deliberately greedy rather than optimal bipartite matching
// (Hungarian): confidence tiers already bound plausible collisions, and the
// greedy walk keeps every committed match explainable by its own reason
// string. Identical inputs always yield identical output (ties are broken by
// earliest transaction date, then lowest payment ID).
//
// Debit transactions (amount <= 0) are excluded from the output entirely.
// The result preserves the input transaction order. The function never
// fails: empty inputs yield empty or fully-unmatched output.
func MatchTransactionsWithPayments(txns []domain.BankTransaction, payments []domain.Payment) []domain.ReconciliationMatch {
	candidates := make([]candidate, 0, len(txns))
	for ti, txn := range txns {
		for pi, payment := range payments {
			if sc, ok := scorePair(txn, payment); ok {
				candidates = append(candidates, candidate{txnIdx: ti, paymentIdx: pi, score: sc})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.score.Rank != b.score.Rank {
			return a.score.Rank > b.score.Rank
		}
		aDate, bDate := txns[a.txnIdx].Date, txns[b.txnIdx].Date
		if !aDate.Equal(bDate) {
			return aDate.Before(bDate)
		}
		return payments[a.paymentIdx].PaymentID < payments[b.paymentIdx].PaymentID
	})

	// Greedy walk: commit a candidate only while both sides are unclaimed.
	committed := make(map[int]candidate, len(txns))
	txnClaimed := make([]bool, len(txns))
	paymentClaimed := make([]bool, len(payments))
	for _, c := range candidates {
		if txnClaimed[c.txnIdx] || paymentClaimed[c.paymentIdx] {
			continue
		}
		txnClaimed[c.txnIdx] = true
		paymentClaimed[c.paymentIdx] = true
		committed[c.txnIdx] = c
	}

	matches := make([]domain.ReconciliationMatch, 0, len(txns))
	for ti, txn := range txns {
		if txn.Amount.Sign() <= 0 {
			continue
		}
		if c, ok := committed[ti]; ok {
			payment := payments[c.paymentIdx]
			matches = append(matches, domain.ReconciliationMatch{
				Transaction:     txn,
				Payment:         &payment,
				MatchConfidence: c.score.Tier,
				MatchReason:     c.score.Reason,
			})
			continue
		}
		matches = append(matches, domain.ReconciliationMatch{
			Transaction:     txn,
			MatchConfidence: domain.ConfidenceNone,
			MatchReason:     unmatchedReason,
		})
	}
	return matches
}
