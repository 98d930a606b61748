package main

import (
	"context"
	"fmt"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
	"github.com/adjutant-mcp/adjutant/internal/toolkit"
)

func handleQuery(store interfaces.SQLStore) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		result, err := store.Query(ctx, args.GetString("sql", ""))
		if err != nil {
			return "", fmt.Errorf("query failed: %w", err)
		}
		return formatQueryResult(result), nil
	}
}

func handleListTables(store interfaces.SQLStore) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		tables, err := store.ListTables(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to list tables: %w", err)
		}
		return formatTableList(tables), nil
	}
}

func handleDescribeTable(store interfaces.SQLStore) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		table := args.GetString("table_name", "")
		columns, err := store.DescribeTable(ctx, table)
		if err != nil {
			return "", err
		}
		return formatColumns(table, columns), nil
	}
}

func handleGetVersion(cfg *config.Config) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		target := common.RedactURL(cfg.Database.Postgres.URL)
		driver := cfg.Database.Driver
		if driver == "" {
			driver = "postgres"
		}
		if driver == "sqlite" {
			target = cfg.Database.SQLite.Path
		}

		writes := "disabled"
		if cfg.Database.AllowWrites {
			writes = "enabled"
		}

		return fmt.Sprintf("%s\nVersion: %s\nBackend: %s (%s)\nWrites: %s\nStatus: OK",
			cfg.Server.Name, config.GetFullVersion(), driver, target, writes), nil
	}
}
