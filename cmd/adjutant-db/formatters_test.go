package main

import (
	"strings"
	"testing"

	"github.com/adjutant-mcp/adjutant/internal/interfaces"
)

func TestFormatQueryResult_Table(t *testing.T) {
	result := &interfaces.QueryResult{
		Columns: []string{"id", "name"},
		Rows:    [][]string{{"1", "alice"}},
	}

	got := formatQueryResult(result)
	want := "| id | name  |\n" +
		"| -- | ----- |\n" +
		"| 1  | alice |\n" +
		"\n1 row"
	if got != want {
		t.Errorf("formatQueryResult =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatQueryResult_CommandOnly(t *testing.T) {
	result := &interfaces.QueryResult{Command: "UPDATE 3"}
	if got := formatQueryResult(result); got != "UPDATE 3" {
		t.Errorf("formatQueryResult = %q", got)
	}
}

func TestFormatQueryResult_EmptyRowSet(t *testing.T) {
	result := &interfaces.QueryResult{Columns: []string{"id"}}

	got := formatQueryResult(result)
	if !strings.Contains(got, "| id |") {
		t.Errorf("header missing from empty row set:\n%s", got)
	}
	if !strings.HasSuffix(got, "0 rows") {
		t.Errorf("count line missing:\n%s", got)
	}
}

func TestFormatTableList(t *testing.T) {
	got := formatTableList([]string{"users"})
	if got != "1 table:\n- users" {
		t.Errorf("formatTableList = %q", got)
	}

	got = formatTableList([]string{"accounts", "widgets"})
	if !strings.HasPrefix(got, "2 tables:") {
		t.Errorf("formatTableList = %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Errorf("trailing newline left in %q", got)
	}
}

func TestFormatColumns(t *testing.T) {
	got := formatColumns("users", []interfaces.ColumnInfo{
		{Name: "id", DataType: "integer", Nullable: false},
		{Name: "email", DataType: "text", Nullable: true, Default: "''"},
	})

	if !strings.HasPrefix(got, `Table "users" (2 columns):`) {
		t.Errorf("missing header:\n%s", got)
	}
	for _, want := range []string{"| column", "| id", "| NO", "| YES", "''"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
