package aggregating

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

func sale(order, item, customer string, date time.Time, amount string, payment string) domain.SalesRecord {
	return domain.SalesRecord{
		OrderID:      order,
		ItemName:     item,
		CustomerName: customer,
		Date:         date,
		TotalAmount:  decimal.RequireFromString(amount),
		PaymentMode:  payment,
	}.WithCalendarFields()
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureTable() *domain.SalesTable {
	return domain.NewSalesTable([]domain.SalesRecord{
		sale("1", "Cupcake", "Asha", day(2025, 2, 3), "100.10", "UPI"),  // Monday
		sale("2", "Brownie", "Ravi", day(2025, 1, 7), "50.20", "Cash"),  // Tuesday
		sale("3", "Cupcake", "Asha", day(2025, 1, 6), "100.10", "Cash"), // Monday
		sale("4", "Red Velvet", "Asha", day(2025, 2, 4), "300", "Card"), // Tuesday
		sale("5", "Brownie", "Meera", day(2025, 3, 5), "49.60", "Cash"), // Wednesday
		sale("6", "Cupcake", "Ravi", day(2024, 12, 30), "0.30", "UPI"),  // Monday
		sale("7", "Muffin", "Zara", day(2025, 3, 6), "75", "Cash"),      // Thursday
	})
}

func TestEmptyTable(t *testing.T) {
	empty := domain.NewSalesTable(nil)

	_, err := TopItems(empty, 5)
	assert.ErrorIs(t, err, domain.ErrEmptyTable)
	_, err = MonthlyRevenue(empty)
	assert.ErrorIs(t, err, domain.ErrEmptyTable)
	_, err = PeakDays(empty)
	assert.ErrorIs(t, err, domain.ErrEmptyTable)
	_, err = PaymentModes(empty)
	assert.ErrorIs(t, err, domain.ErrEmptyTable)
	_, err = LoyaltySplit(empty)
	assert.ErrorIs(t, err, domain.ErrEmptyTable)
	_, err = CustomerRollups(empty)
	assert.ErrorIs(t, err, domain.ErrEmptyTable)
	_, err = Summary(empty)
	assert.ErrorIs(t, err, domain.ErrEmptyTable)
}

func TestTopItems(t *testing.T) {
	table := fixtureTable()

	tests := []struct {
		name  string
		limit int
		want  []domain.CountRow
	}{
		{
			name:  "Limite maior que o número de itens",
			limit: 5,
			want: []domain.CountRow{
				{Value: "Cupcake", Count: 3},
				{Value: "Brownie", Count: 2},
				{Value: "Red Velvet", Count: 1},
				{Value: "Muffin", Count: 1},
			},
		},
		{
			name:  "Empate resolvido pela primeira aparição",
			limit: 3,
			want: []domain.CountRow{
				{Value: "Cupcake", Count: 3},
				{Value: "Brownie", Count: 2},
				{Value: "Red Velvet", Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TopItems(table, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := TopItems(table, 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestMonthlyRevenue(t *testing.T) {
	got, err := MonthlyRevenue(fixtureTable())
	require.NoError(t, err)

	require.Len(t, got, 4)
	assert.Equal(t, "2024-12", got[0].Period)
	assert.Equal(t, "December", got[0].Month)
	assert.Equal(t, "0.3", got[0].Revenue.String())

	assert.Equal(t, "2025-01", got[1].Period)
	assert.Equal(t, "150.3", got[1].Revenue.String())
	assert.Equal(t, 2, got[1].OrderCount)

	assert.Equal(t, "2025-02", got[2].Period)
	assert.Equal(t, "400.1", got[2].Revenue.String())

	assert.Equal(t, "2025-03", got[3].Period)
	assert.Equal(t, "124.6", got[3].Revenue.String())
}

func TestPeakDaysAndPaymentModes(t *testing.T) {
	days, err := PeakDays(fixtureTable())
	require.NoError(t, err)
	assert.Equal(t, []domain.CountRow{
		{Value: "Monday", Count: 3},
		{Value: "Tuesday", Count: 2},
		{Value: "Wednesday", Count: 1},
		{Value: "Thursday", Count: 1},
	}, days)

	modes, err := PaymentModes(fixtureTable())
	require.NoError(t, err)
	assert.Equal(t, []domain.CountRow{
		{Value: "Cash", Count: 4},
		{Value: "UPI", Count: 2},
		{Value: "Card", Count: 1},
	}, modes)
}

func TestPaymentModes_AllCash(t *testing.T) {
	table := domain.NewSalesTable([]domain.SalesRecord{
		sale("1", "Cupcake", "A", day(2025, 1, 1), "10", "Cash"),
		sale("2", "Cupcake", "B", day(2025, 1, 2), "10", "Cash"),
		sale("3", "Brownie", "C", day(2025, 1, 3), "10", "Cash"),
	})

	got, err := PaymentModes(table)
	require.NoError(t, err)
	assert.Equal(t, []domain.CountRow{{Value: "Cash", Count: 3}}, got)
}

func TestLoyaltySplit(t *testing.T) {
	t.Run("Cliente A com três pedidos e B com um", func(t *testing.T) {
		table := domain.NewSalesTable([]domain.SalesRecord{
			sale("1", "Cupcake", "A", day(2025, 1, 1), "10", "Cash"),
			sale("2", "Brownie", "A", day(2025, 1, 2), "10", "UPI"),
			sale("3", "Cupcake", "A", day(2025, 1, 3), "10", "Cash"),
			sale("4", "Muffin", "B", day(2025, 1, 4), "10", "Card"),
		})

		got, err := LoyaltySplit(table)
		require.NoError(t, err)
		assert.Equal(t, domain.LoyaltySplit{Repeat: 1, New: 1}, got)
	})

	t.Run("Tabela de exemplo", func(t *testing.T) {
		got, err := LoyaltySplit(fixtureTable())
		require.NoError(t, err)
		assert.Equal(t, domain.LoyaltySplit{Repeat: 2, New: 2}, got)
		assert.Equal(t, 4, got.Total())
	})
}

func TestCustomerRollups(t *testing.T) {
	got, err := CustomerRollups(fixtureTable())
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "Asha", got[0].Customer)
	assert.Equal(t, "500.2", got[0].TotalSpent.String())
	assert.Equal(t, 3, got[0].OrderFrequency)
	assert.Equal(t, 2, got[0].UniqueItems)
	assert.True(t, got[0].IsRepeat())

	assert.Equal(t, "Meera", got[1].Customer)
	assert.False(t, got[1].IsRepeat())

	assert.Equal(t, "Ravi", got[2].Customer)
	assert.Equal(t, "50.5", got[2].TotalSpent.String())
	assert.Equal(t, 2, got[2].UniqueItems)

	assert.Equal(t, "Zara", got[3].Customer)
}

func TestSummary(t *testing.T) {
	got, err := Summary(fixtureTable())
	require.NoError(t, err)

	assert.Equal(t, 7, got.Records)
	assert.Equal(t, 4, got.DistinctCustomers)
	assert.Equal(t, "675.3", got.TotalRevenue.String())
	assert.Equal(t, "96.47", got.AverageOrderValue.String())
	assert.Equal(t, day(2024, 12, 30), got.FirstDate)
	assert.Equal(t, day(2025, 3, 6), got.LastDate)
}
