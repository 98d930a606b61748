// Package toolkit implements the tool-dispatch layer shared by every
// Adjutant server: tool declaration, argument validation, safety gating,
// and normalization of every outcome into the MCP result shape.
package toolkit

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// FieldType enumerates the argument kinds a tool schema can declare.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeEnum    FieldType = "enum"
)

// FieldSpec declares one argument in a tool's schema.
// A field with Required=false and a nil Default is absent-permitted:
// the handler must treat omission as its own default.
type FieldSpec struct {
	Name        string
	Type        FieldType
	Description string
	Required    bool
	Default     any
	Enum        []string // allowed values when Type is TypeEnum
}

// Descriptor declares a tool: name, description, and argument schema.
// Descriptors are immutable once registered.
type Descriptor struct {
	Name        string
	Description string
	Fields      []FieldSpec
}

// Handler executes one backend operation with validated arguments and
// returns the success text or an error. Errors become IsError results;
// they are never surfaced to the transport as faults.
type Handler func(ctx context.Context, args Args) (string, error)

// Gate is a pre-dispatch policy check. It runs after validation and
// before the handler; a non-nil error blocks the call without any
// backend effect.
type Gate interface {
	Check(args Args) error
}

// GateFunc adapts a function to the Gate interface.
type GateFunc func(args Args) error

// Check implements Gate.
func (f GateFunc) Check(args Args) error { return f(args) }

// Registration binds a descriptor to its optional gate and its handler.
type Registration struct {
	Descriptor Descriptor
	Gate       Gate
	Handler    Handler
}

// Args holds validated, typed arguments for one call. Values are only
// the kinds the validator produces: string, float64, or bool.
type Args map[string]any

// Has reports whether the field was supplied or defaulted.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// GetString returns the string value for name, or def when absent.
func (a Args) GetString(name, def string) string {
	if v, ok := a[name].(string); ok {
		return v
	}
	return def
}

// GetNumber returns the numeric value for name, or def when absent.
func (a Args) GetNumber(name string, def float64) float64 {
	if v, ok := a[name].(float64); ok {
		return v
	}
	return def
}

// GetInt returns the numeric value for name truncated to int, or def when absent.
func (a Args) GetInt(name string, def int) int {
	if v, ok := a[name].(float64); ok {
		return int(v)
	}
	return def
}

// GetBool returns the boolean value for name, or def when absent.
func (a Args) GetBool(name string, def bool) bool {
	if v, ok := a[name].(bool); ok {
		return v
	}
	return def
}

// BuildTool converts a Descriptor into an mcp.Tool so the advertised
// JSON schema carries the declared types, requirements, and defaults.
func BuildTool(d Descriptor) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(d.Description)}
	for _, f := range d.Fields {
		opts = append(opts, buildFieldOption(f))
	}
	return mcp.NewTool(d.Name, opts...)
}

// buildFieldOption maps a FieldSpec to the appropriate mcp-go tool option.
func buildFieldOption(f FieldSpec) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if f.Description != "" {
		opts = append(opts, mcp.Description(f.Description))
	}
	if f.Required {
		opts = append(opts, mcp.Required())
	}

	switch f.Type {
	case TypeNumber:
		if v, ok := f.Default.(float64); ok {
			opts = append(opts, mcp.DefaultNumber(v))
		}
		return mcp.WithNumber(f.Name, opts...)
	case TypeBoolean:
		if v, ok := f.Default.(bool); ok {
			opts = append(opts, mcp.DefaultBool(v))
		}
		return mcp.WithBoolean(f.Name, opts...)
	case TypeEnum:
		opts = append(opts, mcp.Enum(f.Enum...))
		if v, ok := f.Default.(string); ok {
			opts = append(opts, mcp.DefaultString(v))
		}
		return mcp.WithString(f.Name, opts...)
	default:
		if v, ok := f.Default.(string); ok {
			opts = append(opts, mcp.DefaultString(v))
		}
		return mcp.WithString(f.Name, opts...)
	}
}
