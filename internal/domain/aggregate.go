package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrEmptyTable é retornado pelos agregadores quando a tabela não tem linhas
var ErrEmptyTable = errors.New("sales table is empty")

// CountRow é uma linha de contagem de frequência (valor -> quantidade)
type CountRow struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// MonthlyRevenue representa a receita e a quantidade de pedidos de um mês
type MonthlyRevenue struct {
	Period     string          `json:"period"` // Período no formato yyyy-mm
	Month      string          `json:"month"`
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int             `json:"order_count"`
}

// LoyaltySplit separa clientes recorrentes (mais de um pedido) de clientes novos
type LoyaltySplit struct {
	Repeat int `json:"repeat"`
	New    int `json:"new"`
}

// Total retorna o número de clientes distintos
func (l LoyaltySplit) Total() int {
	return l.Repeat + l.New
}

// CustomerRollup agrega os pedidos de um cliente. Usado apenas como entrada do classificador.
type CustomerRollup struct {
	Customer       string          `json:"customer"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	OrderFrequency int             `json:"order_frequency"`
	UniqueItems    int             `json:"unique_items"`
}

// IsRepeat indica se o cliente fez mais de um pedido
func (c CustomerRollup) IsRepeat() bool {
	return c.OrderFrequency > 1
}

// SalesSummary contém os indicadores gerais exibidos no topo do painel
type SalesSummary struct {
	Records           int             `json:"records"`
	DistinctCustomers int             `json:"distinct_customers"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	FirstDate         time.Time       `json:"first_date"`
	LastDate          time.Time       `json:"last_date"`
}
