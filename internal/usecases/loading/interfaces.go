package loading

import (
	"context"

	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/sales_source.go -package=mocks

// SalesSource entrega os registros brutos de vendas, sem campos derivados
type SalesSource interface {
	ReadSales(ctx context.Context) ([]domain.SalesRecord, error)
}

// Loader carrega a tabela de vendas pronta para as agregações
type Loader interface {
	Load(ctx context.Context) (*domain.SalesTable, error)
}
