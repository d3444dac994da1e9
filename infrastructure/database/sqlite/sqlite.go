package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/bakery-dashboard/infrastructure/database/postgres"
	_ "modernc.org/sqlite"
)

// NewConnection abre um banco sqlite local. O caminho ":memory:" cria um banco efêmero.
func NewConnection(ctx context.Context, path string) (*postgres.Connection, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir sqlite %s: %w", path, err)
	}

	// Um único escritor evita "database is locked" no modo em memória
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("erro ao conectar no sqlite %s: %w", path, err)
	}

	return postgres.Wrap(db), nil
}
