package loading

import (
	"context"
	"fmt"
	"io"

	"github.com/vfg2006/bakery-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/bakery-dashboard/infrastructure/database/sqlite"
	"github.com/vfg2006/bakery-dashboard/infrastructure/integrator/spreadsheet"
	"github.com/vfg2006/bakery-dashboard/infrastructure/repository"
	"github.com/vfg2006/bakery-dashboard/internal/config"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

// repositorySource adapta o repositório de vendas à interface SalesSource
type repositorySource struct {
	repo repository.SalesRecordRepository
}

func NewRepositorySource(repo repository.SalesRecordRepository) SalesSource {
	return &repositorySource{repo: repo}
}

func (s *repositorySource) ReadSales(ctx context.Context) ([]domain.SalesRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	return records, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewSource escolhe a fonte de vendas pelo SALES_SOURCE. O Closer devolvido
// libera a conexão com o banco quando houver uma.
func NewSource(ctx context.Context, cfg *config.Config) (SalesSource, io.Closer, error) {
	switch cfg.Source.Kind {
	case config.SourceFile:
		return spreadsheet.NewExcelReader(cfg.Source.FilePath, cfg.Source.Sheet), nopCloser{}, nil

	case config.SourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
		}
		repo := repository.NewSalesRecordRepository(conn, cfg.Source.Table, repository.DialectPostgres)
		return NewRepositorySource(repo), conn, nil

	case config.SourceSQLite:
		conn, err := sqlite.NewConnection(ctx, cfg.Source.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
		}
		repo := repository.NewSalesRecordRepository(conn, cfg.Source.Table, repository.DialectSQLite)
		return NewRepositorySource(repo), conn, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source.Kind)
}
