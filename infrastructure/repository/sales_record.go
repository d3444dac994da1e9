package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/bakery-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/pkg/utils"
)

//go:generate mockgen -source=sales_record.go -destination=mocks/sales_record.go -package=mocks

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"

	insertChunkSize = 500
)

var salesRecordColumns = []string{
	"id", "order_id", "item_name", "customer_name", "sale_date", "total_amount", "payment_mode",
}

// SalesRecordRepository lê e importa os registros brutos de vendas.
// Agregados e resultados do classificador nunca são persistidos.
type SalesRecordRepository interface {
	List(ctx context.Context) ([]domain.SalesRecord, error)
	InsertBatch(ctx context.Context, records []domain.SalesRecord) (int, error)
	EnsureSchema(ctx context.Context) error
}

type salesRecordRepository struct {
	conn        postgres.Conn
	table       string
	dialect     string
	placeholder squirrel.PlaceholderFormat
}

func NewSalesRecordRepository(conn postgres.Conn, table, dialect string) SalesRecordRepository {
	placeholder := squirrel.PlaceholderFormat(squirrel.Dollar)
	if dialect == DialectSQLite {
		placeholder = squirrel.Question
	}

	return &salesRecordRepository{
		conn:        conn,
		table:       table,
		dialect:     dialect,
		placeholder: placeholder,
	}
}

func (r *salesRecordRepository) EnsureSchema(ctx context.Context) error {
	amountType := "NUMERIC(12,2)"
	if r.dialect == DialectSQLite {
		amountType = "TEXT"
	}

	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id            TEXT PRIMARY KEY,
			order_id      TEXT NOT NULL,
			item_name     TEXT NOT NULL,
			customer_name TEXT NOT NULL,
			sale_date     TEXT NOT NULL,
			total_amount  %s NOT NULL,
			payment_mode  TEXT NOT NULL
		)`, r.table, amountType)

	if _, err := r.conn.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", r.table, err)
	}

	return nil
}

func (r *salesRecordRepository) List(ctx context.Context) ([]domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select(salesRecordColumns[1:]...).
		From(r.table).
		OrderBy("sale_date ASC", "order_id ASC").
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de venda: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// InsertBatch grava os registros em blocos dentro de uma única transação
func (r *salesRecordRepository) InsertBatch(ctx context.Context, records []domain.SalesRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	inserted := 0
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += insertChunkSize {
			end := min(start+insertChunkSize, len(records))

			builder := squirrel.
				Insert(r.table).
				Columns(salesRecordColumns...).
				PlaceholderFormat(r.placeholder)

			for _, rec := range records[start:end] {
				id, err := utils.GenerateID()
				if err != nil {
					return fmt.Errorf("erro ao gerar id: %w", err)
				}
				builder = builder.Values(
					id,
					rec.OrderID,
					rec.ItemName,
					rec.CustomerName,
					rec.Date.Format(time.DateOnly),
					rec.TotalAmount.StringFixed(2),
					rec.PaymentMode,
				)
			}

			query, args, err := builder.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}

			affected, _ := result.RowsAffected()
			inserted += int(affected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *salesRecordRepository) scanRecord(rows *sql.Rows) (domain.SalesRecord, error) {
	var (
		record domain.SalesRecord
		date   string
		amount string
	)

	err := rows.Scan(
		&record.OrderID,
		&record.ItemName,
		&record.CustomerName,
		&date,
		&amount,
		&record.PaymentMode,
	)
	if err != nil {
		return record, err
	}

	record.Date, err = parseStoredDate(date)
	if err != nil {
		return record, domain.NewLoadError(domain.ErrUnparseableDate, 0, domain.ColumnDate, date)
	}

	record.TotalAmount, err = decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return record, domain.NewLoadError(domain.ErrInvalidAmount, 0, domain.ColumnTotalAmount, amount)
	}

	return record, nil
}

// parseStoredDate aceita tanto "2006-01-02" quanto o formato RFC3339 que
// os drivers devolvem para colunas DATE
func parseStoredDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{time.DateOnly, time.RFC3339Nano, time.DateTime} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", value)
}
