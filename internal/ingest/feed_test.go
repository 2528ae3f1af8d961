package ingest

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseFeed_ValidRows(t *testing.T) {
	rows := []FeedRow{
		{Date: "2025-03-01", Description: "E-TRANSFER REF 1042", Amount: "500.00", ReferenceID: strPtr("bank-ref-1")},
		{Date: "2025-03-02", Description: "SERVICE FEE", Amount: "(75.00)"},
		{Date: "2025-03-03", Description: "  WIRE IN  ", Amount: "+1,250.00", ReferenceID: strPtr("  ")},
	}

	result := ParseFeed(rows)
	require.Empty(t, result.Errors)
	require.Len(t, result.Transactions, 3)

	first := result.Transactions[0]
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), first.Date)
	require.NotNil(t, first.ReferenceID)
	assert.Equal(t, "bank-ref-1", *first.ReferenceID)

	fee := result.Transactions[1]
	assert.True(t, fee.Amount.Equal(decimal.RequireFromString("-75.00")), "parenthesized amount must be negative")
	assert.Nil(t, fee.ReferenceID)

	wire := result.Transactions[2]
	assert.Equal(t, "WIRE IN", wire.Description)
	assert.True(t, wire.Amount.Equal(decimal.RequireFromString("1250.00")))
	assert.Nil(t, wire.ReferenceID, "blank reference ids are dropped")
}

func TestParseFeed_BadRowsAreReportedNotFatal(t *testing.T) {
	rows := []FeedRow{
		{Date: "03/01/2025", Description: "WRONG DATE FORMAT", Amount: "100.00"},
		{Date: "2025-03-02", Description: "BAD AMOUNT", Amount: "abc"},
		{Date: "2025-03-03", Description: "GOOD", Amount: "42.00"},
	}

	result := ParseFeed(rows)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "GOOD", result.Transactions[0].Description)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 1, result.Errors[0].Row)
	assert.Equal(t, 2, result.Errors[1].Row)
}

func TestParseFeed_EmptyInput(t *testing.T) {
	result := ParseFeed(nil)
	assert.Empty(t, result.Transactions)
	assert.Empty(t, result.Errors)
}
