package main

import (
	"fmt"
	"strings"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
)

// formatQueryResult renders a row set as a markdown table with a count
// line, or passes the command tag through for statements without rows.
func formatQueryResult(result *interfaces.QueryResult) string {
	if len(result.Columns) == 0 {
		return result.Command
	}

	var sb strings.Builder
	sb.WriteString(common.MarkdownTable(result.Columns, result.Rows))
	sb.WriteString("\n")
	sb.WriteString(common.Pluralize(len(result.Rows), "row"))
	return sb.String()
}

func formatTableList(tables []string) string {
	if len(tables) == 0 {
		return "No tables found"
	}

	var sb strings.Builder
	sb.WriteString(common.Pluralize(len(tables), "table"))
	sb.WriteString(":\n")
	for _, t := range tables {
		sb.WriteString("- ")
		sb.WriteString(t)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatColumns(table string, columns []interfaces.ColumnInfo) string {
	rows := make([][]string, 0, len(columns))
	for _, c := range columns {
		nullable := "NO"
		if c.Nullable {
			nullable = "YES"
		}
		rows = append(rows, []string{c.Name, c.DataType, nullable, c.Default})
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Table %q (%s):\n", table, common.Pluralize(len(columns), "column")))
	sb.WriteString(common.MarkdownTable([]string{"column", "type", "nullable", "default"}, rows))
	return strings.TrimRight(sb.String(), "\n")
}
