package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesFixture() []SalesRecord {
	sale := func(order, item, customer string, date time.Time) SalesRecord {
		return SalesRecord{
			OrderID:      order,
			ItemName:     item,
			CustomerName: customer,
			Date:         date,
			TotalAmount:  decimal.NewFromInt(100),
			PaymentMode:  "UPI",
		}.WithCalendarFields()
	}

	return []SalesRecord{
		sale("O1", "Cupcake", "Asha", time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)),
		sale("O2", "Brownie", "Ravi", time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)),
		sale("O3", "Cupcake", "Asha", time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC)),
		sale("O4", "Muffin", "NA", time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)),
		sale("O5", "Cupcake", "Asha", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)),
	}
}

func TestSalesTable_GroupRows(t *testing.T) {
	table := NewSalesTable(salesFixture())

	tests := []struct {
		name     string
		column   string
		expected map[string][]int
	}{
		{
			name:   "agrupa por cliente preservando a ordem das linhas",
			column: ColumnCustomerName,
			expected: map[string][]int{
				"Asha": {0, 2, 4},
				"Ravi": {1},
				"NA":   {3},
			},
		},
		{
			name:   "agrupa por período",
			column: ColumnPeriod,
			expected: map[string][]int{
				"2025-01": {0, 3},
				"2025-02": {1, 2},
				"2025-03": {4},
			},
		},
		{
			name:   "agrupa por item",
			column: ColumnItemName,
			expected: map[string][]int{
				"Cupcake": {0, 2, 4},
				"Brownie": {1},
				"Muffin":  {3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, err := table.GroupRows(tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, groups)
		})
	}
}

func TestSalesTable_GroupRowsErrors(t *testing.T) {
	t.Run("tabela vazia não tem grupos", func(t *testing.T) {
		groups, err := NewSalesTable(nil).GroupRows(ColumnPeriod)
		require.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("coluna desconhecida", func(t *testing.T) {
		_, err := NewSalesTable(salesFixture()).GroupRows("Discount")
		assert.Error(t, err)
	})
}

func TestSalesTable_Column(t *testing.T) {
	table := NewSalesTable(salesFixture())

	customers, err := table.Column(ColumnCustomerName)
	require.NoError(t, err)
	assert.Equal(t, []string{"Asha", "Ravi", "Asha", "NA", "Asha"}, customers)

	assert.Equal(t, "O4", table.Record(3).OrderID)
	assert.Equal(t, 5, table.Len())
	assert.False(t, table.IsEmpty())
	assert.True(t, NewSalesTable(nil).IsEmpty())

	_, err = table.Column("Discount")
	assert.Error(t, err)
}
