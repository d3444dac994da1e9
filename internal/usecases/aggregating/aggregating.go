package aggregating

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

// ErrInvalidLimit é retornado quando o limite de itens não é positivo
var ErrInvalidLimit = errors.New("limit must be positive")

// TopItems retorna os itens mais pedidos, limitados a limit linhas
func TopItems(table *domain.SalesTable, limit int) ([]domain.CountRow, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	rows, err := valueCounts(table, domain.ColumnItemName)
	if err != nil {
		return nil, err
	}

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// PeakDays conta os pedidos por dia da semana
func PeakDays(table *domain.SalesTable) ([]domain.CountRow, error) {
	return valueCounts(table, domain.ColumnDay)
}

// PaymentModes conta os pedidos por forma de pagamento
func PaymentModes(table *domain.SalesTable) ([]domain.CountRow, error) {
	return valueCounts(table, domain.ColumnPaymentMode)
}

// MonthlyRevenue soma a receita por período (yyyy-mm), em ordem cronológica
func MonthlyRevenue(table *domain.SalesTable) ([]domain.MonthlyRevenue, error) {
	if table.IsEmpty() {
		return nil, domain.ErrEmptyTable
	}

	groups, err := table.GroupRows(domain.ColumnPeriod)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MonthlyRevenue, 0, len(groups))
	for period, rows := range groups {
		row := domain.MonthlyRevenue{
			Period:     period,
			Month:      table.Record(rows[0]).Month,
			Revenue:    decimal.Zero,
			OrderCount: len(rows),
		}
		for _, i := range rows {
			row.Revenue = row.Revenue.Add(table.Record(i).TotalAmount)
		}
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Period < result[j].Period
	})

	return result, nil
}

// CustomerRollups agrega os pedidos por cliente, ordenado pelo nome
func CustomerRollups(table *domain.SalesTable) ([]domain.CustomerRollup, error) {
	if table.IsEmpty() {
		return nil, domain.ErrEmptyTable
	}

	groups, err := table.GroupRows(domain.ColumnCustomerName)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CustomerRollup, 0, len(groups))
	for customer, rows := range groups {
		rollup := domain.CustomerRollup{
			Customer:       customer,
			TotalSpent:     decimal.Zero,
			OrderFrequency: len(rows),
		}
		items := make(map[string]struct{})
		for _, i := range rows {
			rec := table.Record(i)
			rollup.TotalSpent = rollup.TotalSpent.Add(rec.TotalAmount)
			items[rec.ItemName] = struct{}{}
		}
		rollup.UniqueItems = len(items)
		result = append(result, rollup)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Customer < result[j].Customer
	})

	return result, nil
}

// LoyaltySplit separa os clientes distintos entre recorrentes e novos
func LoyaltySplit(table *domain.SalesTable) (domain.LoyaltySplit, error) {
	rollups, err := CustomerRollups(table)
	if err != nil {
		return domain.LoyaltySplit{}, err
	}

	var split domain.LoyaltySplit
	for _, r := range rollups {
		if r.IsRepeat() {
			split.Repeat++
		} else {
			split.New++
		}
	}
	return split, nil
}

// Summary calcula os indicadores gerais da tabela
func Summary(table *domain.SalesTable) (domain.SalesSummary, error) {
	if table.IsEmpty() {
		return domain.SalesSummary{}, domain.ErrEmptyTable
	}

	records := table.Records()
	summary := domain.SalesSummary{
		Records:      len(records),
		TotalRevenue: decimal.Zero,
		FirstDate:    records[0].Date,
		LastDate:     records[0].Date,
	}

	customers := make(map[string]struct{})
	for _, rec := range records {
		summary.TotalRevenue = summary.TotalRevenue.Add(rec.TotalAmount)
		customers[rec.CustomerName] = struct{}{}
		if rec.Date.Before(summary.FirstDate) {
			summary.FirstDate = rec.Date
		}
		if rec.Date.After(summary.LastDate) {
			summary.LastDate = rec.Date
		}
	}

	summary.DistinctCustomers = len(customers)
	summary.AverageOrderValue = summary.TotalRevenue.
		Div(decimal.NewFromInt(int64(summary.Records))).
		Round(2)

	return summary, nil
}

// valueCounts conta as ocorrências de cada valor da coluna. A ordem é por contagem
// decrescente e, no empate, pela primeira aparição na tabela.
func valueCounts(table *domain.SalesTable, column string) ([]domain.CountRow, error) {
	if table.IsEmpty() {
		return nil, domain.ErrEmptyTable
	}

	values, err := table.Column(column)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	rows := make([]domain.CountRow, 0)
	for _, v := range values {
		if i, ok := index[v]; ok {
			rows[i].Count++
			continue
		}
		index[v] = len(rows)
		rows = append(rows, domain.CountRow{Value: v, Count: 1})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})

	return rows, nil
}
