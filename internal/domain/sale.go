package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Nomes das colunas da planilha de vendas
const (
	ColumnOrderID      = "Order_ID"
	ColumnItemName     = "Item_Name"
	ColumnCustomerName = "Customer_Name"
	ColumnDate         = "Date"
	ColumnTotalAmount  = "Total_Amount"
	ColumnPaymentMode  = "Payment_Mode"
	ColumnMonth        = "Month"
	ColumnDay          = "Day"
	ColumnPeriod       = "Period"
)

// RequiredColumns lista as colunas obrigatórias da fonte de vendas, na ordem da planilha
var RequiredColumns = []string{
	ColumnOrderID,
	ColumnItemName,
	ColumnCustomerName,
	ColumnDate,
	ColumnTotalAmount,
	ColumnPaymentMode,
}

// SalesRecord representa uma transação da planilha de vendas
type SalesRecord struct {
	OrderID      string          `json:"order_id"`
	ItemName     string          `json:"item_name"`
	CustomerName string          `json:"customer_name"`
	Date         time.Time       `json:"date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PaymentMode  string          `json:"payment_mode"`

	// Campos derivados da data no momento da carga
	Month  string `json:"month"`
	Day    string `json:"day"`
	Period string `json:"period"` // Período no formato yyyy-mm
}

// WithCalendarFields retorna uma cópia do registro com mês, dia da semana e período preenchidos
func (r SalesRecord) WithCalendarFields() SalesRecord {
	r.Month = r.Date.Month().String()
	r.Day = r.Date.Weekday().String()
	r.Period = r.Date.Format("2006-01")
	return r
}
