package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bakery-dashboard/infrastructure/database/sqlite"
	"github.com/vfg2006/bakery-dashboard/infrastructure/integrator/spreadsheet"
	"github.com/vfg2006/bakery-dashboard/infrastructure/repository"
	"github.com/xuri/excelize/v2"
)

func writeSalesWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"Order_ID", "Item_Name", "Customer_Name", "Date", "Total_Amount", "Payment_Mode"},
		{"1", "Chocolate Cake", "Asha", "2025-06-23", "450", "UPI"},
		{"2", "Croissant", "Ravi", "2025-06-24", "120.50", "Cash"},
	}
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellName, &row))
	}

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	conn, err := sqlite.NewConnection(ctx, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	repo := repository.NewSalesRecordRepository(conn, "sales_records", repository.DialectSQLite)
	reader := spreadsheet.NewExcelReader(writeSalesWorkbook(t), "")

	imported, err := seed(ctx, reader, repo)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Chocolate Cake", records[0].ItemName)

	// Segunda execução não duplica
	imported, err = seed(ctx, reader, repo)
	require.NoError(t, err)
	assert.Zero(t, imported)

	records, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
