package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bakery-dashboard/infrastructure/database/sqlite"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

func newSQLiteRepo(t *testing.T) SalesRecordRepository {
	t.Helper()

	ctx := context.Background()
	conn, err := sqlite.NewConnection(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	repo := NewSalesRecordRepository(conn, "sales_records", DialectSQLite)
	require.NoError(t, repo.EnsureSchema(ctx))
	return repo
}

func TestSalesRecordRepository_InsertAndList(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	records := []domain.SalesRecord{
		{
			OrderID:      "ORD-2",
			ItemName:     "Brownie",
			CustomerName: "Ravi",
			Date:         time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			TotalAmount:  decimal.RequireFromString("120.5"),
			PaymentMode:  "Cash",
		},
		{
			OrderID:      "ORD-1",
			ItemName:     "Chocolate Cake",
			CustomerName: "Asha",
			Date:         time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			TotalAmount:  decimal.RequireFromString("450"),
			PaymentMode:  "UPI",
		},
	}

	inserted, err := repo.InsertBatch(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Ordenado por data
	assert.Equal(t, "ORD-1", got[0].OrderID)
	assert.Equal(t, "2025-01-05", got[0].Date.Format(time.DateOnly))
	assert.True(t, decimal.RequireFromString("450").Equal(got[0].TotalAmount))
	assert.Equal(t, "UPI", got[0].PaymentMode)

	assert.Equal(t, "ORD-2", got[1].OrderID)
	assert.True(t, decimal.RequireFromString("120.50").Equal(got[1].TotalAmount))
}

func TestSalesRecordRepository_EmptyTable(t *testing.T) {
	repo := newSQLiteRepo(t)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	inserted, err := repo.InsertBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestParseStoredDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
		err   bool
	}{
		{name: "data simples", value: "2025-03-01", want: "2025-03-01"},
		{name: "formato do driver", value: "2025-03-01T00:00:00Z", want: "2025-03-01"},
		{name: "data e hora", value: "2025-03-01 10:11:12", want: "2025-03-01"},
		{name: "valor inválido", value: "ontem", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStoredDate(tt.value)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(time.DateOnly))
		})
	}
}
