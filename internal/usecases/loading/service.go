package loading

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

type Service struct {
	source     SalesSource
	sourceName string
}

func NewService(source SalesSource, sourceName string) *Service {
	return &Service{
		source:     source,
		sourceName: sourceName,
	}
}

// Load lê a fonte, deriva mês, dia da semana e período e monta a tabela imutável
func (s *Service) Load(ctx context.Context) (*domain.SalesTable, error) {
	start := time.Now()

	records, err := s.source.ReadSales(ctx)
	if err != nil {
		return nil, NewLoadingError(err, s.sourceName)
	}

	for i := range records {
		records[i] = records[i].WithCalendarFields()
	}

	table := domain.NewSalesTable(records)

	logrus.WithFields(logrus.Fields{
		"source":      s.sourceName,
		"records":     table.Len(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Tabela de vendas carregada")

	return table, nil
}
