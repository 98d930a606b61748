package main

import (
	"errors"
	"strings"

	"github.com/adjutant-mcp/adjutant/internal/toolkit"
)

var errWritesDisabled = errors.New("write operations are disabled: only SELECT statements are permitted (set allow_writes = true or ADJUTANT_ALLOW_WRITES=1 to change this)")

// NewWritePolicyGate returns the safety gate for the query tool. With
// writes enabled every statement passes. Otherwise only statements whose
// first keyword is SELECT are admitted.
//
// This is a first-token check, not a SQL parser. A read-only CTE
// ("WITH t AS ... SELECT") is rejected, and a SELECT calling a mutating
// function would be admitted; callers needing either shape run the
// server with writes enabled.
func NewWritePolicyGate(allowWrites bool) toolkit.Gate {
	return toolkit.GateFunc(func(args toolkit.Args) error {
		if allowWrites {
			return nil
		}
		sql := args.GetString("sql", "")
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(sql)), "select") {
			return errWritesDisabled
		}
		return nil
	})
}
