package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyToFloat(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
	}{
		{name: "Zero", value: "0", want: 0},
		{name: "Duas casas", value: "150.30", want: 150.3},
		{name: "Arredonda", value: "96.4714", want: 96.47},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MoneyToFloat(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, IDLength)
	assert.NotEqual(t, first, second)
}
