package interfaces

import "context"

// QueryResult holds one executed SQL statement's outcome. Row-returning
// statements fill Columns and Rows; statements without a row set leave
// them empty and report the driver's command tag instead.
type QueryResult struct {
	Columns []string
	Rows    [][]string
	Command string
}

// ColumnInfo describes one column of a relational table.
type ColumnInfo struct {
	Name     string
	DataType string
	Nullable bool
	Default  string
}

// SQLStore is the relational backend contract. Implementations can be
// swapped per driver (Postgres over a connection pool, SQLite embedded).
type SQLStore interface {
	// Query executes one SQL statement on its own connection.
	Query(ctx context.Context, sql string) (*QueryResult, error)
	// ListTables returns user table names, sorted.
	ListTables(ctx context.Context) ([]string, error)
	// DescribeTable returns the columns of a table. A table with zero
	// matching columns is an error, not an empty result.
	DescribeTable(ctx context.Context, table string) ([]ColumnInfo, error)
	// Ping verifies backend connectivity.
	Ping(ctx context.Context) error
	Close()
}

// KeyValueStore is the key-value backend contract. Absent keys are not
// errors: Get reports found=false and Delete reports existed=false so
// callers can phrase both outcomes as normal results.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) (existed bool, err error)
	// Keys returns the keys matching a glob pattern, sorted.
	Keys(ctx context.Context, pattern string) ([]string, error)
	// Ping verifies backend connectivity.
	Ping(ctx context.Context) error
	Close() error
}
