package spreadsheet

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Formatos de data aceitos quando a célula não é um número serial do Excel.
// Datas com barra são lidas com o mês primeiro.
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04",
	"1/2/06",
	"2006/01/02",
	"02-Jan-2006",
	"2-Jan-2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Maior número serial aceito pelo Excel (31/12/9999)
const maxExcelSerial = 2958465

var excelSerialPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

const contextCheckEvery = 1000

// ParseRows converte as linhas da planilha (cabeçalho na primeira linha) em registros de venda
func ParseRows(ctx context.Context, rows [][]string) ([]domain.SalesRecord, error) {
	if len(rows) == 0 {
		return nil, domain.NewLoadError(domain.ErrMissingColumn, 0, domain.ColumnOrderID, "")
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if i%contextCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if isBlank(row) {
			continue
		}

		record, err := parseRow(row, index, i+2)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

func parseRow(row []string, index map[string]int, rowNumber int) (domain.SalesRecord, error) {
	rawDate := cell(row, index[domain.ColumnDate])
	date, err := ParseDate(rawDate)
	if err != nil {
		return domain.SalesRecord{}, domain.NewLoadError(domain.ErrUnparseableDate, rowNumber, domain.ColumnDate, rawDate)
	}

	rawAmount := cell(row, index[domain.ColumnTotalAmount])
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return domain.SalesRecord{}, domain.NewLoadError(domain.ErrInvalidAmount, rowNumber, domain.ColumnTotalAmount, rawAmount)
	}

	return domain.SalesRecord{
		OrderID:      cell(row, index[domain.ColumnOrderID]),
		ItemName:     cell(row, index[domain.ColumnItemName]),
		CustomerName: cell(row, index[domain.ColumnCustomerName]),
		Date:         date,
		TotalAmount:  amount,
		PaymentMode:  cell(row, index[domain.ColumnPaymentMode]),
	}, nil
}

// headerIndex localiza as colunas obrigatórias no cabeçalho, ignorando caixa e espaços
func headerIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		key := normalizeHeader(name)
		if _, exists := positions[key]; !exists {
			positions[key] = i
		}
	}

	index := make(map[string]int, len(domain.RequiredColumns))
	for _, column := range domain.RequiredColumns {
		pos, ok := positions[normalizeHeader(column)]
		if !ok {
			return nil, domain.NewLoadError(domain.ErrMissingColumn, 1, column, "")
		}
		index[column] = pos
	}

	return index, nil
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}

// ParseDate aceita números seriais do Excel e os formatos de texto mais comuns
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, domain.ErrUnparseableDate
	}

	if excelSerialPattern.MatchString(value) {
		serial, err := strconv.ParseFloat(value, 64)
		if err != nil || serial <= 0 || serial > maxExcelSerial {
			return time.Time{}, domain.ErrUnparseableDate
		}
		date, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", domain.ErrUnparseableDate, err)
		}
		return date, nil
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}

	return time.Time{}, domain.ErrUnparseableDate
}

// ParseAmount converte o valor total do pedido, aceitando separador de milhar e símbolo de moeda
func ParseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "₹")
	value = strings.ReplaceAll(value, ",", "")
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	return decimal.NewFromString(value)
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
