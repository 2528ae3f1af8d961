package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "Date,Description,Debit,Credit\n"

func TestParseCSV_ValidRows(t *testing.T) {
	input := csvHeader +
		"03/01/2025,E-TRANSFER REF 1042,,500.00\n" +
		"03/02/2025,SERVICE FEE,75.00,\n" +
		"03/03/2025,\"WIRE IN, ACME STUDIO\",,\"1,250.00\"\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	require.Len(t, result.Transactions, 3)

	first := result.Transactions[0]
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "E-TRANSFER REF 1042", first.Description)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("500.00")))

	fee := result.Transactions[1]
	assert.True(t, fee.Amount.Equal(decimal.RequireFromString("-75.00")), "debit column must produce a negative amount")

	wire := result.Transactions[2]
	assert.Equal(t, "WIRE IN, ACME STUDIO", wire.Description)
	assert.True(t, wire.Amount.Equal(decimal.RequireFromString("1250.00")), "thousands separator must be honored")
}

func TestParseCSV_BadRowsAreReportedNotFatal(t *testing.T) {
	input := csvHeader +
		"not-a-date,DEPOSIT,,100.00\n" +
		"03/02/2025,DEPOSIT,,not-an-amount\n" +
		"03/03/2025,DEPOSIT,,\n" +
		"03/04/2025,DEPOSIT,10.00,20.00\n" +
		"03/05/2025,GOOD DEPOSIT,,200.00\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "GOOD DEPOSIT", result.Transactions[0].Description)

	require.Len(t, result.Errors, 4)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Reason, "parsing date")
	assert.Equal(t, 3, result.Errors[1].Row)
	assert.Equal(t, 4, result.Errors[2].Row)
	assert.Contains(t, result.Errors[2].Reason, "neither debit nor credit")
	assert.Equal(t, 5, result.Errors[3].Row)
	assert.Contains(t, result.Errors[3].Reason, "both debit and credit")

	warnings := result.Warnings()
	require.Len(t, warnings, 4)
	assert.Contains(t, warnings[0], "row 2:")
}

func TestParseCSV_HeaderOnlyYieldsNothing(t *testing.T) {
	result, err := ParseCSV(strings.NewReader(csvHeader))
	require.NoError(t, err)
	assert.Empty(t, result.Transactions)
	assert.Empty(t, result.Errors)
	assert.Nil(t, result.Warnings())
}

func TestParseCSV_MalformedInputIsFatal(t *testing.T) {
	// A wrong column count is a shape error for the whole file.
	input := "Date,Description\n03/01/2025,DEPOSIT\n"
	_, err := ParseCSV(strings.NewReader(input))
	assert.Error(t, err)
}
