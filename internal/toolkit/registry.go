package toolkit

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateTool is returned when a tool name is registered twice.
	ErrDuplicateTool = errors.New("duplicate tool name")

	// ErrUnknownTool is returned when a lookup names no registered tool.
	ErrUnknownTool = errors.New("unknown tool")
)

// Registry holds the tool registrations for one server instance.
// It is written once during startup and read-only afterward; callers
// must finish registration before the server accepts calls.
type Registry struct {
	names []string
	tools map[string]Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Registration)}
}

// Register adds a registration. The descriptor name must be non-empty
// and unique within the registry.
func (r *Registry) Register(reg Registration) error {
	name := reg.Descriptor.Name
	if name == "" {
		return fmt.Errorf("tool has empty name")
	}
	if reg.Handler == nil {
		return fmt.Errorf("tool %q has no handler", name)
	}
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
	}
	r.tools[name] = reg
	r.names = append(r.names, name)
	return nil
}

// RegisterAll registers every registration, stopping at the first error.
func (r *Registry) RegisterAll(regs ...Registration) error {
	for _, reg := range regs {
		if err := r.Register(reg); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the registration for name.
func (r *Registry) Lookup(name string) (Registration, error) {
	reg, ok := r.tools[name]
	if !ok {
		return Registration{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return reg, nil
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
