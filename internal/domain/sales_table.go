package domain

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// columnRow guarda a posição original da linha no dataframe, para que os grupos
// apontem de volta para os registros com valores exatos
const columnRow = "Row"

// SalesTable é a tabela de vendas carregada em memória. Não é alterada depois da carga.
type SalesTable struct {
	records []SalesRecord
	frame   dataframe.DataFrame
}

// NewSalesTable monta a tabela a partir dos registros já com os campos de calendário
func NewSalesTable(records []SalesRecord) *SalesTable {
	n := len(records)
	rows := make([]int, n)
	items := make([]string, n)
	customers := make([]string, n)
	payments := make([]string, n)
	months := make([]string, n)
	days := make([]string, n)
	periods := make([]string, n)

	owned := make([]SalesRecord, n)
	for i, r := range records {
		owned[i] = r
		rows[i] = i
		items[i] = r.ItemName
		customers[i] = r.CustomerName
		payments[i] = r.PaymentMode
		months[i] = r.Month
		days[i] = r.Day
		periods[i] = r.Period
	}

	frame := dataframe.New(
		series.New(rows, series.Int, columnRow),
		series.New(items, series.String, ColumnItemName),
		series.New(customers, series.String, ColumnCustomerName),
		series.New(payments, series.String, ColumnPaymentMode),
		series.New(months, series.String, ColumnMonth),
		series.New(days, series.String, ColumnDay),
		series.New(periods, series.String, ColumnPeriod),
	)

	return &SalesTable{records: owned, frame: frame}
}

// Len retorna o número de linhas da tabela
func (t *SalesTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// IsEmpty indica se a tabela não tem linhas
func (t *SalesTable) IsEmpty() bool {
	return t.Len() == 0
}

// Records retorna uma cópia dos registros
func (t *SalesTable) Records() []SalesRecord {
	out := make([]SalesRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Record retorna o registro da linha i
func (t *SalesTable) Record(i int) SalesRecord {
	return t.records[i]
}

// Column retorna os valores de uma coluna como texto, na ordem original das linhas
func (t *SalesTable) Column(name string) ([]string, error) {
	col := t.frame.Col(name)
	if col.Err != nil {
		return nil, fmt.Errorf("coluna %q: %w", name, col.Err)
	}
	return col.Records(), nil
}

// GroupRows agrupa as linhas pelo valor da coluna com o GroupBy do dataframe. Cada
// grupo traz os índices das linhas em ordem crescente.
func (t *SalesTable) GroupRows(column string) (map[string][]int, error) {
	if t.IsEmpty() {
		return map[string][]int{}, nil
	}

	values, err := t.Column(column)
	if err != nil {
		return nil, err
	}

	groups := t.frame.GroupBy(column)
	if groups == nil {
		return nil, fmt.Errorf("agrupar por %q: coluna não informada", column)
	}
	if groups.Err != nil {
		return nil, fmt.Errorf("agrupar por %q: %w", column, groups.Err)
	}

	out := make(map[string][]int, len(groups.GetGroups()))
	for _, group := range groups.GetGroups() {
		rows, err := group.Col(columnRow).Int()
		if err != nil {
			return nil, fmt.Errorf("agrupar por %q: %w", column, err)
		}
		if len(rows) == 0 {
			continue
		}
		// A chave vem da coluna original, sem passar pela conversão do GroupBy
		out[values[rows[0]]] = rows
	}

	return out, nil
}
