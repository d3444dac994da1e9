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

// MoneyToFloat converte um valor monetário para float64 com duas casas, para gráficos
func MoneyToFloat(d decimal.Decimal) float64 {
	return RoundWithTwoDecimalPlace(d.InexactFloat64())
}
