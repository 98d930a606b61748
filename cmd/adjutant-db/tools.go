package main

import (
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
	"github.com/adjutant-mcp/adjutant/internal/toolkit"
)

// registerTools declares the database tool surface and binds each tool to
// its handler. Only query carries a gate: the inspection tools never write.
func registerTools(reg *toolkit.Registry, store interfaces.SQLStore, cfg *config.Config) error {
	return reg.RegisterAll(
		toolkit.Registration{
			Descriptor: queryDescriptor(),
			Gate:       NewWritePolicyGate(cfg.Database.AllowWrites),
			Handler:    handleQuery(store),
		},
		toolkit.Registration{
			Descriptor: listTablesDescriptor(),
			Handler:    handleListTables(store),
		},
		toolkit.Registration{
			Descriptor: describeTableDescriptor(),
			Handler:    handleDescribeTable(store),
		},
		toolkit.Registration{
			Descriptor: versionDescriptor(),
			Handler:    handleGetVersion(cfg),
		},
	)
}

func queryDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "query",
		Description: "Execute a SQL statement and return the result. Row-returning statements come back as a markdown table; other statements report the rows affected. Unless the server was started with writes enabled, only SELECT statements are permitted.",
		Fields: []toolkit.FieldSpec{
			{Name: "sql", Type: toolkit.TypeString, Required: true, Description: "SQL statement to execute"},
		},
	}
}

func listTablesDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "list_tables",
		Description: "List the user tables in the configured database, sorted by name.",
	}
}

func describeTableDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "describe_table",
		Description: "Show the columns of a table: name, data type, nullability, and default value.",
		Fields: []toolkit.FieldSpec{
			{Name: "table_name", Type: toolkit.TypeString, Required: true, Description: "Name of the table to describe"},
		},
	}
}

func versionDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "get_version",
		Description: "Get the Adjutant-DB server version and backend status. Use this to verify connectivity.",
	}
}
