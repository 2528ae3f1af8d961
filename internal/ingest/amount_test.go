package ingest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"500.00", "500.00"},
		{"1,234.56", "1234.56"},
		{"1,234,567.89", "1234567.89"},
		{"-75.00", "-75.00"},
		{"75.00-", "-75.00"},
		{"(75.00)", "-75.00"},
		{"($1,075.00)", "-1075.00"},
		{"+42", "42"},
		{"$99.99", "99.99"},
		{" 10.50 ", "10.50"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "12.3.4", "()", "$", "--5"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAmount(in)
			assert.Error(t, err, "ParseAmount(%q) should fail", in)
		})
	}
}
