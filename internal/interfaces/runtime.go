package interfaces

import "context"

// ContainerInfo is the subset of engine container state the tools report.
type ContainerInfo struct {
	ID     string
	Names  []string
	Image  string
	State  string
	Status string
}

// ContainerRuntime is the container backend contract. Containers are
// addressed per call by id or name; the runtime connection itself is
// long-lived. Stop and restart take a timeout in seconds before the
// engine force-kills the container.
type ContainerRuntime interface {
	ListContainers(ctx context.Context, all bool) ([]ContainerInfo, error)
	StartContainer(ctx context.Context, idOrName string) error
	StopContainer(ctx context.Context, idOrName string, timeoutSeconds int) error
	RestartContainer(ctx context.Context, idOrName string, timeoutSeconds int) error
	// Ping verifies the engine is reachable.
	Ping(ctx context.Context) error
	Close() error
}
