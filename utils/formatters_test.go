package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatAmount(dec("1234.5"), "$"))
	assert.Equal(t, "€0.00", FormatAmount(dec("0"), "€"))
	assert.Equal(t, "£10.99", FormatAmount(dec("10.991"), "£"))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "Mar 07, 2025", FormatDate(d))
	assert.Equal(t, "2025-03-07", FormatDateForInput(d))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain number", "42.50", "42.5"},
		{"currency prefix", "$1,299.99", "1299.99"},
		{"whitespace", " 10 ", "10"},
		{"garbage coerces to zero", "abc", "0"},
		{"empty coerces to zero", "", "0"},
		{"negative", "-5", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			assert.True(t, dec(tt.expected).Equal(got), "got %s", got)
		})
	}
}
