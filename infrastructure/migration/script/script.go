package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/bakery-dashboard/infrastructure/database/sqlite"
	"github.com/vfg2006/bakery-dashboard/infrastructure/integrator/spreadsheet"
	"github.com/vfg2006/bakery-dashboard/infrastructure/repository"
	"github.com/vfg2006/bakery-dashboard/internal/config"
	"github.com/vfg2006/bakery-dashboard/pkg/log"
)

// Importa a planilha de vendas (SALES_FILE_PATH) para a tabela SALES_TABLE.
// O destino é o sqlite quando SALES_SOURCE=sqlite e o PostgreSQL nos demais casos.
func main() {
	log.Configure("info")
	logrus.Info("Iniciando script de importação de vendas...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, dialect := connect(ctx, cfg)
	defer conn.Close()

	imported, err := seed(ctx, spreadsheet.NewExcelReader(cfg.Source.FilePath, cfg.Source.Sheet),
		repository.NewSalesRecordRepository(conn, cfg.Source.Table, dialect))
	if err != nil {
		logrus.WithError(err).Fatal("ERRO na importação")
	}

	logrus.WithFields(logrus.Fields{
		"records": imported,
		"table":   cfg.Source.Table,
		"dialect": dialect,
	}).Info("Script de importação concluído")
}

func connect(ctx context.Context, cfg *config.Config) (*postgres.Connection, string) {
	if cfg.Source.Kind == config.SourceSQLite {
		conn, err := sqlite.NewConnection(ctx, cfg.Source.SQLitePath)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao abrir o banco sqlite")
		}
		return conn, repository.DialectSQLite
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}
	return conn, repository.DialectPostgres
}

// seed lê todas as linhas da planilha e grava numa única transação.
// Uma tabela que já tem vendas não é tocada para não duplicar pedidos.
func seed(ctx context.Context, reader spreadsheet.SpreadsheetReader, repo repository.SalesRecordRepository) (int, error) {
	startTime := time.Now()

	if err := repo.EnsureSchema(ctx); err != nil {
		return 0, err
	}

	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		logrus.WithField("records", len(existing)).Warn("AVISO: tabela de vendas já populada, nada a importar")
		return 0, nil
	}

	records, err := reader.ReadSales(ctx)
	if err != nil {
		return 0, err
	}
	logrus.Infof("Iniciando inserção de %d vendas...", len(records))

	inserted, err := repo.InsertBatch(ctx, records)
	if err != nil {
		return 0, err
	}

	logrus.Infof("Inserção de vendas concluída em %v", time.Since(startTime))
	return inserted, nil
}
