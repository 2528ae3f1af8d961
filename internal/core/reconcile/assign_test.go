package reconcile

import (
	"testing"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_QuoteAndSameDayIsHigh(t *testing.T) {
	txns := []domain.BankTransaction{
		txn(day(2025, 3, 1), "500.00", "E-TRANSFER REF 1042"),
	}
	payments := []domain.Payment{
		payment("p1", "500.00", "1042", dayPtr(2025, 3, 1)),
	}

	matches := MatchTransactionsWithPayments(txns, payments)

	require.Len(t, matches, 1)
	require.NotNil(t, matches[0].Payment)
	assert.Equal(t, "p1", matches[0].Payment.PaymentID)
	assert.Equal(t, domain.ConfidenceHigh, matches[0].MatchConfidence)
	assert.Contains(t, matches[0].MatchReason, "quote #1042 in description")
	assert.Contains(t, matches[0].MatchReason, "same-day")
}

func TestMatch_DistantDateWithoutQuoteIsLow(t *testing.T) {
	txns := []domain.BankTransaction{
		txn(day(2025, 3, 1), "500.00", "E-TRANSFER DEPOSIT"),
	}
	payments := []domain.Payment{
		payment("p1", "500.00", "9999", dayPtr(2025, 2, 1)),
	}

	matches := MatchTransactionsWithPayments(txns, payments)

	require.Len(t, matches, 1)
	require.NotNil(t, matches[0].Payment)
	assert.Equal(t, domain.ConfidenceLow, matches[0].MatchConfidence)
}

func TestMatch_CloserDateWinsTie(t *testing.T) {
	txns := []domain.BankTransaction{
		txn(day(2025, 3, 1), "200.00", "INCOMING WIRE"),
	}
	payments := []domain.Payment{
		payment("pZ", "200.00", "Z", dayPtr(2025, 3, 6)),
		payment("pX", "200.00", "X", dayPtr(2025, 3, 1)),
	}

	matches := MatchTransactionsWithPayments(txns, payments)

	require.Len(t, matches, 1)
	require.NotNil(t, matches[0].Payment)
	assert.Equal(t, "pX", matches[0].Payment.PaymentID, "payment with the closer date must win")
}

func TestMatch_DebitsExcludedFromOutput(t *testing.T) {
	txns := []domain.BankTransaction{
		txn(day(2025, 3, 1), "-75.00", "SERVICE FEE"),
		txn(day(2025, 3, 2), "300.00", "E-TRANSFER DEPOSIT"),
	}

	matches := MatchTransactionsWithPayments(txns, nil)

	require.Len(t, matches, 1)
	assert.True(t, matches[0].Transaction.Amount.Equal(decimal.RequireFromString("300.00")))
}

func TestMatch_EmptyPaymentsYieldsAllNone(t *testing.T) {
	txns := []domain.BankTransaction{
		txn(day(2025, 3, 1), "100.00", "DEPOSIT A"),
		txn(day(2025, 3, 2), "250.50", "DEPOSIT B"),
		txn(day(2025, 3, 3), "980.25", "DEPOSIT C"),
	}

	matches := MatchTransactionsWithPayments(txns, []domain.Payment{})

	require.Len(t, matches, 3)
	for _, m := range matches {
		assert.Nil(t, m.Payment)
		assert.Equal(t, domain.ConfidenceNone, m.MatchConfidence)
		assert.Equal(t, "No matching payment found", m.MatchReason)
	}
}

func TestMatch_EmptyInputsYieldEmptyOutput(t *testing.T) {
	assert.Empty(t, MatchTransactionsWithPayments(nil, nil))
	assert.Empty(t, MatchTransactionsWithPayments([]domain.BankTransaction{}, []domain.Payment{payment("p1", "10.00", "1", nil)}))
}

func TestMatch_NoPaymentClaimedTwice(t *testing.T) {
	txns := []domain.BankTransaction{
		txn(day(2025, 3, 1), "200.00", "DEPOSIT ONE"),
		txn(day(2025, 3, 2), "200.00", "DEPOSIT TWO"),
		txn(day(2025, 3, 3), "200.00", "DEPOSIT THREE"),
	}
	payments := []domain.Payment{
		payment("p1", "200.00", "A", dayPtr(2025, 3, 1)),
		payment("p2", "200.00", "B", dayPtr(2025, 3, 2)),
	}

	matches := MatchTransactionsWithPayments(txns, payments)

	require.Len(t, matches, 3)
	seen := map[string]bool{}
	matched := 0
	for _, m := range matches {
		if m.Payment == nil {
			assert.Equal(t, domain.ConfidenceNone, m.MatchConfidence)
			continue
		}
		matched++
		assert.False(t, seen[m.Payment.PaymentID], "payment %s claimed twice", m.Payment.PaymentID)
		seen[m.Payment.PaymentID] = true
	}
	assert.Equal(t, 2, matched)
}

func TestMatch_AmountExactnessForCommittedMatches(t *testing.T) {
	txns := []domain.BankTransaction{
		txn(day(2025, 3, 1), "150.00", "DEPOSIT"),
		txn(day(2025, 3, 2), "150.01", "DEPOSIT"),
	}
	payments := []domain.Payment{
		payment("p1", "150.00", "10", dayPtr(2025, 3, 1)),
	}

	matches := MatchTransactionsWithPayments(txns, payments)

	require.Len(t, matches, 2)
	for _, m := range matches {
		if m.MatchConfidence != domain.ConfidenceNone {
			require.NotNil(t, m.Payment)
			assert.True(t, m.Transaction.Amount.Equal(m.Payment.Amount))
		}
	}
}

func TestMatch_OutputPreservesInputOrder(t *testing.T) {
	txns := []domain.BankTransaction{
		txn(day(2025, 3, 9), "50.00", "LATE DEPOSIT"),
		txn(day(2025, 3, 1), "75.00", "EARLY DEPOSIT"),
		txn(day(2025, 3, 5), "60.00", "MIDDLE DEPOSIT"),
	}
	payments := []domain.Payment{
		payment("p1", "60.00", "77", dayPtr(2025, 3, 5)),
	}

	matches := MatchTransactionsWithPayments(txns, payments)

	require.Len(t, matches, 3)
	assert.Equal(t, "LATE DEPOSIT", matches[0].Transaction.Description)
	assert.Equal(t, "EARLY DEPOSIT", matches[1].Transaction.Description)
	assert.Equal(t, "MIDDLE DEPOSIT", matches[2].Transaction.Description)
}

func TestMatch_Deterministic(t *testing.T) {
	txns := []domain.BankTransaction{
		txn(day(2025, 3, 1), "200.00", "DEPOSIT ONE"),
		txn(day(2025, 3, 1), "200.00", "DEPOSIT TWO"),
		txn(day(2025, 3, 4), "500.00", "E-TRANSFER REF 1042"),
	}
	payments := []domain.Payment{
		payment("p2", "200.00", "B", dayPtr(2025, 3, 1)),
		payment("p1", "200.00", "A", dayPtr(2025, 3, 1)),
		payment("p3", "500.00", "1042", dayPtr(2025, 3, 3)),
	}

	first := MatchTransactionsWithPayments(txns, payments)
	second := MatchTransactionsWithPayments(txns, payments)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].MatchConfidence, second[i].MatchConfidence)
		assert.Equal(t, first[i].MatchReason, second[i].MatchReason)
		if first[i].Payment == nil {
			assert.Nil(t, second[i].Payment)
		} else {
			require.NotNil(t, second[i].Payment)
			assert.Equal(t, first[i].Payment.PaymentID, second[i].Payment.PaymentID)
		}
	}

	// Same-rank candidates on the same date resolve by lowest payment ID.
	require.NotNil(t, first[0].Payment)
	assert.Equal(t, "p1", first[0].Payment.PaymentID)
}

func TestMatch_EqualRankPrefersEarlierTransactionDate(t *testing.T) {
	txns := []domain.BankTransaction{
		txn(day(2025, 3, 10), "400.00", "DEPOSIT LATE"),
		txn(day(2025, 3, 2), "400.00", "DEPOSIT EARLY"),
	}
	// One payment with no recorded date: rank is identical for both
	// transactions, so the earlier transaction must claim it.
	payments := []domain.Payment{
		payment("p1", "400.00", "55", nil),
	}

	matches := MatchTransactionsWithPayments(txns, payments)

	require.Len(t, matches, 2)
	assert.Nil(t, matches[0].Payment)
	require.NotNil(t, matches[1].Payment)
	assert.Equal(t, "p1", matches[1].Payment.PaymentID)
}
