package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata um valor monetário para exibição, ex: "$1234.56".
// Usamos decimal para o arredondamento de exibição não herdar ruído binário
// do float64.
func FormatCurrency(value float64) string {
	return "$" + decimal.NewFromFloat(value).StringFixed(2)
}

// FormatPercent formata um percentual com uma casa decimal, ex: "42.5%"
func FormatPercent(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(1) + "%"
}
