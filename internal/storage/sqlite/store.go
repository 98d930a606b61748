// Package sqlite implements the relational store over an embedded SQLite
// database, using the pure-Go modernc driver (no CGO required).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
)

// Store executes SQL against a SQLite database file. database/sql manages
// the connection pool; every row set is fully drained and closed before a
// call returns.
type Store struct {
	db     *sql.DB
	logger *common.Logger
}

// New opens (or creates) the database at the configured path and verifies
// connectivity. WAL mode keeps readers unblocked during writes; the busy
// timeout absorbs short write bursts.
func New(ctx context.Context, cfg config.SQLiteConfig, logger *common.Logger) (*Store, error) {
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	dsn := cfg.Path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=foreign_keys(ON)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", cfg.Path, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite database unreachable: %w", err)
	}

	logger.Info().Str("path", cfg.Path).Msg("Opened SQLite database")
	return &Store{db: db, logger: logger}, nil
}

// rowReturning reports whether a statement produces a row set. database/sql
// has no command-tag channel, so the statement verb decides whether to run
// through Query (collect rows) or Exec (report rows affected).
func rowReturning(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, verb := range []string{"select", "with", "pragma", "explain", "values"} {
		if strings.HasPrefix(q, verb) {
			return true
		}
	}
	return false
}

// Query runs a single SQL statement and collects the full result set.
func (s *Store) Query(ctx context.Context, query string) (*interfaces.QueryResult, error) {
	if !rowReturning(query) {
		res, err := s.db.ExecContext(ctx, query)
		if err != nil {
			return nil, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return &interfaces.QueryResult{Command: "OK"}, nil
		}
		return &interfaces.QueryResult{Command: fmt.Sprintf("OK (%d rows affected)", affected)}, nil
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &interfaces.QueryResult{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = renderValue(v)
		}
		result.Rows = append(result.Rows, row)
	}
	return result, rows.Err()
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

// ListTables returns user table names, sorted. Internal sqlite_* tables
// are excluded.
func (s *Store) ListTables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`)
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

// DescribeTable returns column metadata via the pragma_table_info table
// function. A table with no columns does not exist, so zero rows is an
// error.
func (s *Store) DescribeTable(ctx context.Context, table string) ([]interfaces.ColumnInfo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, type, "notnull", COALESCE(dflt_value, '')
		FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []interfaces.ColumnInfo
	for rows.Next() {
		var col interfaces.ColumnInfo
		var notNull int
		if err := rows.Scan(&col.Name, &col.DataType, &notNull, &col.Default); err != nil {
			return nil, err
		}
		col.Nullable = notNull == 0
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

// Ping verifies the database file is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close shuts down the connection pool.
func (s *Store) Close() {
	s.db.Close()
}
