package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPostgresClient(host string, port string, dbname string, username string, password string, maxConnections int) (*pgxpool.Pool, error) {
	dbConfig := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", username, password, host, port, dbname)

	config, err := pgxpool.ParseConfig(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	config.MaxConns = int32(maxConnections) //nolint:all
	config.MinConns = 1
	config.MaxConnIdleTime = 5 * time.Minute
	config.MaxConnLifetime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute

	// O COPY das coleções grandes (comments) precisa de um statement_timeout folgado.
	config.ConnConfig.RuntimeParams = map[string]string{
		"timezone":                            "UTC",
		"statement_timeout":                   "120s",
		"lock_timeout":                        "10s",
		"idle_in_transaction_session_timeout": "60s",
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect postgres: %w", err)
	}

	return pool, nil
}

// CollectionLoader replaces the content of one mock_<entity> table per call.
type CollectionLoader struct {
	pool *pgxpool.Pool
}

func NewCollectionLoader(pool *pgxpool.Pool) *CollectionLoader {
	return &CollectionLoader{pool: pool}
}

// ReplaceCollection recreates the table content inside one transaction:
// rows are (id int, document jsonb).
func (l *CollectionLoader) ReplaceCollection(ctx context.Context, table string, rows [][]any) error {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	ident := pgx.Identifier{table}.Sanitize()
	create := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (id integer PRIMARY KEY, document jsonb NOT NULL)`, ident)
	if _, err := tx.Exec(ctx, create); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf(`TRUNCATE TABLE %s`, ident)); err != nil {
		return fmt.Errorf("failed to truncate table %s: %w", table, err)
	}

	if _, err := tx.CopyFrom(ctx, pgx.Identifier{table}, []string{"id", "document"}, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("failed to copy rows into %s: %w", table, err)
	}

	return tx.Commit(ctx)
}
