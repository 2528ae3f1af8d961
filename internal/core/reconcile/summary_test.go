package reconcile

import (
	"testing"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalTransactions)
	assert.Equal(t, 0, summary.Unmatched)
	assert.True(t, summary.TotalCredits.IsZero())
	assert.True(t, summary.MatchedAmount.IsZero())
	assert.True(t, summary.UnmatchedAmount.IsZero())
}

func TestSummarize_CountsAndAmounts(t *testing.T) {
	txns := []domain.BankTransaction{
		txn(day(2025, 3, 1), "500.00", "E-TRANSFER REF 1042"),
		txn(day(2025, 3, 2), "200.00", "DEPOSIT"),
		txn(day(2025, 3, 3), "120.50", "DEPOSIT"),
		txn(day(2025, 3, 4), "80.00", "DEPOSIT"),
	}
	payments := []domain.Payment{
		payment("p1", "500.00", "1042", dayPtr(2025, 3, 1)),  // high
		payment("p2", "200.00", "77", dayPtr(2025, 3, 4)),    // medium
		payment("p3", "120.50", "88", dayPtr(2025, 1, 1)),    // low
	}

	matches := MatchTransactionsWithPayments(txns, payments)
	summary := Summarize(matches)

	assert.Equal(t, 4, summary.TotalTransactions)
	assert.Equal(t, 1, summary.Matched.High)
	assert.Equal(t, 1, summary.Matched.Medium)
	assert.Equal(t, 1, summary.Matched.Low)
	assert.Equal(t, 1, summary.Unmatched)

	assert.True(t, summary.TotalCredits.Equal(decimal.RequireFromString("900.50")))
	assert.True(t, summary.MatchedAmount.Equal(decimal.RequireFromString("820.50")))
	assert.True(t, summary.UnmatchedAmount.Equal(decimal.RequireFromString("80.00")))
}

func TestSummarize_Consistency(t *testing.T) {
	txns := []domain.BankTransaction{
		txn(day(2025, 3, 1), "500.00", "E-TRANSFER REF 1042"),
		txn(day(2025, 3, 2), "200.00", "DEPOSIT"),
		txn(day(2025, 3, 3), "-40.00", "SERVICE FEE"),
		txn(day(2025, 3, 4), "80.00", "DEPOSIT"),
	}
	payments := []domain.Payment{
		payment("p1", "500.00", "1042", dayPtr(2025, 3, 1)),
	}

	matches := MatchTransactionsWithPayments(txns, payments)
	summary := Summarize(matches)

	// The debit never reaches the summary at all.
	require.Equal(t, 3, summary.TotalTransactions)

	totalMatched := summary.Matched.High + summary.Matched.Medium + summary.Matched.Low
	assert.Equal(t, summary.TotalTransactions, totalMatched+summary.Unmatched)
	assert.True(t, summary.TotalCredits.Equal(summary.MatchedAmount.Add(summary.UnmatchedAmount)))
}

func TestSummarize_AllUnmatched(t *testing.T) {
	txns := []domain.BankTransaction{
		txn(day(2025, 3, 1), "100.00", "DEPOSIT A"),
		txn(day(2025, 3, 2), "250.50", "DEPOSIT B"),
		txn(day(2025, 3, 3), "980.25", "DEPOSIT C"),
	}

	summary := Summarize(MatchTransactionsWithPayments(txns, nil))

	assert.Equal(t, 3, summary.TotalTransactions)
	assert.Equal(t, summary.TotalTransactions, summary.Unmatched)
	assert.True(t, summary.TotalCredits.Equal(summary.UnmatchedAmount))
	assert.True(t, summary.MatchedAmount.IsZero())
}
