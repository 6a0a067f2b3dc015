package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 3.14, RoundWithTwoDecimalPlace(3.14159))
	assert.Equal(t, -3.14, RoundWithTwoDecimalPlace(-3.14159))
	assert.Equal(t, 2.5, RoundWithTwoDecimalPlace(2.5))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(1234.5))
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$-42.10", FormatCurrency(-42.1))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50.0%", FormatPercent(50))
	assert.Equal(t, "-3.1%", FormatPercent(-3.1))
	assert.Equal(t, "0.0%", FormatPercent(0))
}
