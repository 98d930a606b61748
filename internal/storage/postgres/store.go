// Package postgres implements the relational store over a pgx connection pool.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
)

// connPool is the slice of pgxpool.Pool the store depends on.
type connPool interface {
	Acquire(ctx context.Context) (poolConn, error)
	Ping(ctx context.Context) error
	Close()
}

// poolConn is a checked-out connection. Release must be called on every path.
type poolConn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Release()
}

// pgxPool adapts *pgxpool.Pool to connPool.
type pgxPool struct {
	pool *pgxpool.Pool
}

func (p *pgxPool) Acquire(ctx context.Context) (poolConn, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (p *pgxPool) Ping(ctx context.Context) error { return p.pool.Ping(ctx) }
func (p *pgxPool) Close()                         { p.pool.Close() }

// Store executes SQL against PostgreSQL, checking out a pooled connection
// per call and releasing it before returning.
type Store struct {
	pool   connPool
	logger *common.Logger
}

// New connects a pool to the configured URL and verifies connectivity.
func New(ctx context.Context, cfg config.PostgresConfig, logger *common.Logger) (*Store, error) {
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres url: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres unreachable: %w", err)
	}

	logger.Info().Str("url", common.RedactURL(cfg.URL)).Msg("Connected to PostgreSQL")
	return newWithPool(&pgxPool{pool: pool}, logger), nil
}

func newWithPool(pool connPool, logger *common.Logger) *Store {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Store{pool: pool, logger: logger}
}

// Query runs a single SQL statement and collects the full result set.
func (s *Store) Query(ctx context.Context, sql string) (*interfaces.QueryResult, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sql)
	if err != nil {
		return nil, err
	}

	return collectResult(rows)
}

func collectResult(rows pgx.Rows) (*interfaces.QueryResult, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = string(f.Name)
	}

	result := &interfaces.QueryResult{Columns: columns}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = renderValue(v)
		}
		result.Rows = append(result.Rows, row)
	}

	// The command tag is only complete once the row stream is closed.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		result.Command = rows.CommandTag().String()
	}
	return result, nil
}

func renderValue(v any) string {
	switch tv := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(tv)
	case time.Time:
		return tv.Format(time.RFC3339)
	default:
		return fmt.Sprint(tv)
	}
}

// ListTables returns base table names in the public schema, sorted.
func (s *Store) ListTables(ctx context.Context) ([]string, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		ORDER BY table_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// DescribeTable returns column metadata for a public-schema table.
// A table with no columns does not exist, so zero rows is an error.
func (s *Store) DescribeTable(ctx context.Context, table string) ([]interfaces.ColumnInfo, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `SELECT column_name, data_type, is_nullable, COALESCE(column_default, '')
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []interfaces.ColumnInfo
	for rows.Next() {
		var col interfaces.ColumnInfo
		var nullable string
		if err := rows.Scan(&col.Name, &col.DataType, &nullable, &col.Default); err != nil {
			return nil, err
		}
		col.Nullable = nullable == "YES"
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("table %q not found", table)
	}
	return columns, nil
}

// Ping verifies the pool can reach the server.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close shuts down the pool.
func (s *Store) Close() {
	s.pool.Close()
}
