package toolkit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/adjutant-mcp/adjutant/internal/common"
)

// Dispatcher routes one tool call at a time through lookup, validation,
// safety gating, and the registered handler, then normalizes the outcome
// to the wire shape. Each call is attempted exactly once; there are no
// retries at this layer.
type Dispatcher struct {
	registry *Registry
	logger   *common.Logger
}

// NewDispatcher creates a dispatcher over a registry. A nil logger is
// replaced with a silent one so tests can omit it.
func NewDispatcher(reg *Registry, logger *common.Logger) *Dispatcher {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Dispatcher{registry: reg, logger: logger}
}

// Dispatch runs one tool call to completion. The result is always non-nil:
// unknown tools, validation failures, gate blocks, and handler errors all
// come back as IsError results, never as faults.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, raw map[string]any) *mcp.CallToolResult {
	log := d.logger.WithCorrelationId(uuid.New().String())

	reg, err := d.registry.Lookup(name)
	if err != nil {
		log.Warn().Str("tool", name).Msg("unknown tool requested")
		return errorResult(err.Error())
	}

	args, err := Validate(reg.Descriptor, raw)
	if err != nil {
		log.Warn().Str("tool", name).Str("error", err.Error()).Msg("argument validation failed")
		return errorResult(err.Error())
	}

	if reg.Gate != nil {
		if err := reg.Gate.Check(args); err != nil {
			log.Warn().Str("tool", name).Str("error", err.Error()).Msg("safety gate blocked call")
			return errorResult(err.Error())
		}
	}

	text, err := d.execute(ctx, reg, args)
	if err != nil {
		log.Warn().Str("tool", name).Str("error", err.Error()).Msg("tool call failed")
		return errorResult(err.Error())
	}

	log.Debug().Str("tool", name).Msg("tool call completed")
	return textResult(text)
}

// execute invokes the handler, converting a panic into an error so a
// misbehaving backend library can never crash the transport loop.
func (d *Dispatcher) execute(ctx context.Context, reg Registration, args Args) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool %s: internal failure: %v", reg.Descriptor.Name, r)
		}
	}()
	return reg.Handler(ctx, args)
}

// Attach registers every tool in the registry on the MCP server, routing
// calls back through Dispatch. The MCP layer stays a pure transport: it
// never sees handler errors, only normalized results.
func (d *Dispatcher) Attach(s *server.MCPServer) int {
	names := d.registry.Names()
	for _, name := range names {
		reg, err := d.registry.Lookup(name)
		if err != nil {
			continue
		}
		s.AddTool(BuildTool(reg.Descriptor), d.toolHandler(name))
	}
	return len(names)
}

// toolHandler adapts one registered tool to mcp-go's handler signature.
func (d *Dispatcher) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return d.Dispatch(ctx, name, r.GetArguments()), nil
	}
}

// textResult wraps success text in the wire result shape.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(text)},
	}
}

// errorResult wraps a failure message in the wire result shape.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(message)},
		IsError: true,
	}
}
