package reconcile

import (
	"testing"
	"time"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func txn(date time.Time, amount string, description string) domain.BankTransaction {
	return domain.BankTransaction{
		TransactionID: "txn-" + date.Format("20060102") + "-" + amount,
		Date:          date,
		Description:   description,
		Amount:        decimal.RequireFromString(amount),
	}
}

func payment(id, amount, quoteNumber string, paidAt *time.Time) domain.Payment {
	return domain.Payment{
		PaymentID:   id,
		Amount:      decimal.RequireFromString(amount),
		QuoteNumber: quoteNumber,
		Method:      "INTERAC",
		PaidAt:      paidAt,
	}
}

func TestScorePair_Eligibility(t *testing.T) {
	tests := []struct {
		name    string
		txn     domain.BankTransaction
		payment domain.Payment
	}{
		{
			name:    "debit transaction is never eligible",
			txn:     txn(day(2025, 3, 1), "-75.00", "SERVICE FEE"),
			payment: payment("p1", "-75.00", "1042", dayPtr(2025, 3, 1)),
		},
		{
			name:    "zero amount transaction is never eligible",
			txn:     txn(day(2025, 3, 1), "0", "ADJUSTMENT"),
			payment: payment("p1", "0", "1042", dayPtr(2025, 3, 1)),
		},
		{
			name:    "amount mismatch disqualifies the pair",
			txn:     txn(day(2025, 3, 1), "500.00", "E-TRANSFER REF 1042"),
			payment: payment("p1", "500.01", "1042", dayPtr(2025, 3, 1)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := scorePair(tt.txn, tt.payment)
			assert.False(t, ok)
		})
	}
}

func TestScorePair_Tiers(t *testing.T) {
	tests := []struct {
		name     string
		txn      domain.BankTransaction
		payment  domain.Payment
		wantTier domain.MatchConfidence
		wantRank int
	}{
		{
			name:     "quote hit and same day is high",
			txn:      txn(day(2025, 3, 1), "500.00", "E-TRANSFER REF 1042"),
			payment:  payment("p1", "500.00", "1042", dayPtr(2025, 3, 1)),
			wantTier: domain.ConfidenceHigh,
			wantRank: 1000,
		},
		{
			name:     "quote hit three days apart is still high",
			txn:      txn(day(2025, 3, 4), "500.00", "E-TRANSFER REF 1042"),
			payment:  payment("p1", "500.00", "1042", dayPtr(2025, 3, 1)),
			wantTier: domain.ConfidenceHigh,
			wantRank: 997,
		},
		{
			name:     "quote hit with nil paidAt is high (delta treated as zero)",
			txn:      txn(day(2025, 3, 1), "500.00", "E-TRANSFER REF 1042"),
			payment:  payment("p1", "500.00", "1042", nil),
			wantTier: domain.ConfidenceHigh,
			wantRank: 1000,
		},
		{
			name:     "digit-only normalization finds hyphenated quote number",
			txn:      txn(day(2025, 3, 1), "500.00", "E-TRANSFER REF 1042"),
			payment:  payment("p1", "500.00", "Q-1042", dayPtr(2025, 3, 1)),
			wantTier: domain.ConfidenceHigh,
			wantRank: 1000,
		},
		{
			name:     "no quote hit within ten days is medium",
			txn:      txn(day(2025, 3, 8), "500.00", "E-TRANSFER DEPOSIT"),
			payment:  payment("p1", "500.00", "1042", dayPtr(2025, 3, 1)),
			wantTier: domain.ConfidenceMedium,
			wantRank: 93,
		},
		{
			name:     "quote hit but more than three days apart falls to medium",
			txn:      txn(day(2025, 3, 6), "500.00", "E-TRANSFER REF 1042"),
			payment:  payment("p1", "500.00", "1042", dayPtr(2025, 3, 1)),
			wantTier: domain.ConfidenceMedium,
			wantRank: 95,
		},
		{
			name:     "28 days apart without quote hit is low",
			txn:      txn(day(2025, 3, 1), "500.00", "E-TRANSFER DEPOSIT"),
			payment:  payment("p1", "500.00", "1042", dayPtr(2025, 2, 1)),
			wantTier: domain.ConfidenceLow,
			wantRank: -18,
		},
		{
			name:     "nil paidAt without quote hit is low",
			txn:      txn(day(2025, 3, 1), "500.00", "E-TRANSFER DEPOSIT"),
			payment:  payment("p1", "500.00", "1042", nil),
			wantTier: domain.ConfidenceLow,
			wantRank: 10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, ok := scorePair(tt.txn, tt.payment)
			require.True(t, ok)
			assert.Equal(t, tt.wantTier, sc.Tier)
			assert.Equal(t, tt.wantRank, sc.Rank)
			assert.NotEmpty(t, sc.Reason)
		})
	}
}

func TestScorePair_ReasonCitesConditions(t *testing.T) {
	sc, ok := scorePair(
		txn(day(2025, 3, 1), "500.00", "E-TRANSFER REF 1042"),
		payment("p1", "500.00", "1042", dayPtr(2025, 3, 1)),
	)
	require.True(t, ok)
	assert.Equal(t, "exact amount + quote #1042 in description + same-day", sc.Reason)

	sc, ok = scorePair(
		txn(day(2025, 3, 8), "500.00", "E-TRANSFER DEPOSIT"),
		payment("p1", "500.00", "1042", dayPtr(2025, 3, 1)),
	)
	require.True(t, ok)
	assert.Equal(t, "exact amount + 7 days apart", sc.Reason)

	sc, ok = scorePair(
		txn(day(2025, 3, 1), "500.00", "E-TRANSFER DEPOSIT"),
		payment("p1", "500.00", "1042", nil),
	)
	require.True(t, ok)
	assert.Equal(t, "exact amount + no recorded payment date", sc.Reason)
}

func TestDateDeltaDays_IgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 3, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, dateDeltaDays(a, b))
	assert.Equal(t, 1, dateDeltaDays(b, a))
	assert.Equal(t, 0, dateDeltaDays(a, a))
}
