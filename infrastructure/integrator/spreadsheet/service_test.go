package spreadsheet

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		index, err := f.NewSheet(sheet)
		require.NoError(t, err)
		f.SetActiveSheet(index)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	require.NoError(t, f.SaveAs(path))
	return path
}

var header = []any{"Order_ID", "Item_Name", "Customer_Name", "Date", "Total_Amount", "Payment_Mode"}

func TestExcelReader_ReadSales(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		header,
		{"ORD-1", "Chocolate Cake", "Asha", "2025-06-23", 450.5, "UPI"},
		{"ORD-2", "Red Velvet", "Ravi", time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC), 300, "Cash"},
		{},
		{"ORD-3", "Brownie", "Asha", "06/25/2025", "120", "Card"},
	})

	records, err := NewExcelReader(path, "").ReadSales(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "ORD-1", records[0].OrderID)
	assert.Equal(t, "Chocolate Cake", records[0].ItemName)
	assert.Equal(t, "450.5", records[0].TotalAmount.String())
	assert.Equal(t, time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC), records[0].Date)

	// Datas gravadas como data do Excel chegam como número serial
	assert.Equal(t, "2025-06-24", records[1].Date.Format(time.DateOnly))
	assert.Equal(t, "Cash", records[1].PaymentMode)

	assert.Equal(t, "2025-06-25", records[2].Date.Format(time.DateOnly))
	assert.Equal(t, "Card", records[2].PaymentMode)
}

func TestExcelReader_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Sales", [][]any{
		header,
		{"ORD-1", "Cupcake", "Meera", "2025-01-05", 80, "Cash"},
	})

	records, err := NewExcelReader(path, "Sales").ReadSales(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = NewExcelReader(path, "Missing").ReadSales(context.Background())
	assert.ErrorIs(t, err, domain.ErrSheetNotFound)
}

func TestExcelReader_MissingFile(t *testing.T) {
	_, err := NewExcelReader(filepath.Join(t.TempDir(), "nope.xlsx"), "").ReadSales(context.Background())
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestExcelReader_HeaderOnly(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{header})

	records, err := NewExcelReader(path, "").ReadSales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseRows_Errors(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		wantErr error
		wantRow int
		wantCol string
	}{
		{
			name:    "planilha sem cabeçalho",
			rows:    nil,
			wantErr: domain.ErrMissingColumn,
			wantCol: domain.ColumnOrderID,
		},
		{
			name: "coluna obrigatória ausente",
			rows: [][]string{
				{"Order_ID", "Item_Name", "Customer_Name", "Date", "Total_Amount"},
			},
			wantErr: domain.ErrMissingColumn,
			wantRow: 1,
			wantCol: domain.ColumnPaymentMode,
		},
		{
			name: "data inválida",
			rows: [][]string{
				{"Order_ID", "Item_Name", "Customer_Name", "Date", "Total_Amount", "Payment_Mode"},
				{"1", "Cake", "A", "2025-01-01", "10", "Cash"},
				{"2", "Cake", "B", "not a date", "10", "Cash"},
			},
			wantErr: domain.ErrUnparseableDate,
			wantRow: 3,
			wantCol: domain.ColumnDate,
		},
		{
			name: "valor inválido",
			rows: [][]string{
				{"Order_ID", "Item_Name", "Customer_Name", "Date", "Total_Amount", "Payment_Mode"},
				{"1", "Cake", "A", "2025-01-01", "ten", "Cash"},
			},
			wantErr: domain.ErrInvalidAmount,
			wantRow: 2,
			wantCol: domain.ColumnTotalAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRows(context.Background(), tt.rows)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var loadErr *domain.LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.wantRow, loadErr.Row)
			assert.Equal(t, tt.wantCol, loadErr.Column)
		})
	}
}

func TestParseRows_HeaderIsCaseAndSpaceInsensitive(t *testing.T) {
	rows := [][]string{
		{"payment mode", " order_id ", "ITEM_NAME", "Customer Name", "date", "total_amount"},
		{"UPI", "9", "Muffin", "Zara", "2025-03-01", "1,250.75"},
	}

	records, err := ParseRows(context.Background(), rows)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "9", records[0].OrderID)
	assert.Equal(t, "UPI", records[0].PaymentMode)
	assert.Equal(t, "1250.75", records[0].TotalAmount.String())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-06-23", "2025-06-23"},
		{"2025-06-23 14:30:00", "2025-06-23"},
		{"6/23/2025", "2025-06-23"},
		{"06/23/2025", "2025-06-23"},
		{"23-Jun-2025", "2025-06-23"},
		{"June 23, 2025", "2025-06-23"},
		{"45831", "2025-06-23"},
		{"45831.5", "2025-06-23"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(time.DateOnly))
		})
	}

	invalid := []string{
		"", "   ", "yesterday", "-3", "2025-13-45",
		"NaN", "Inf", "-Inf", "1e308", "1_000", "0x1p4", "+45831",
		"0", "0.0", "2958466",
	}
	for _, bad := range invalid {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, domain.ErrUnparseableDate, bad)
	}
}
