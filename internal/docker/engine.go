// Package docker implements the container runtime over the Docker Engine
// API. One client is created at startup; containers are addressed per
// call by id or name and never cached.
package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
)

// EngineAPI is the slice of the Docker client the manager depends on.
type EngineAPI interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerRestart(ctx context.Context, containerID string, options container.StopOptions) error
	Ping(ctx context.Context) (types.Ping, error)
	Close() error
}

// Manager talks to one Docker daemon over the local socket (or the
// configured host) for the process lifetime.
type Manager struct {
	api    EngineAPI
	logger *common.Logger
}

// NewManager connects a Docker client and verifies the daemon responds.
// An empty host falls back to DOCKER_HOST and the platform default
// socket; API version negotiation keeps the client compatible with older
// daemons.
func NewManager(ctx context.Context, cfg config.DockerConfig, logger *common.Logger) (*Manager, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if cfg.Host != "" {
		opts = append(opts, client.WithHost(cfg.Host))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	ping, err := cli.Ping(ctx)
	if err != nil {
		cli.Close()
		return nil, fmt.Errorf("docker daemon unreachable: %w", err)
	}

	if logger == nil {
		logger = common.NewSilentLogger()
	}
	logger.Info().Str("api_version", ping.APIVersion).Msg("Connected to Docker daemon")
	return newWithAPI(cli, logger), nil
}

func newWithAPI(api EngineAPI, logger *common.Logger) *Manager {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Manager{api: api, logger: logger}
}

// ListContainers returns running containers, or all containers when all
// is set.
func (m *Manager) ListContainers(ctx context.Context, all bool) ([]interfaces.ContainerInfo, error) {
	summaries, err := m.api.ContainerList(ctx, container.ListOptions{All: all})
	if err != nil {
		return nil, err
	}

	infos := make([]interfaces.ContainerInfo, len(summaries))
	for i, s := range summaries {
		infos[i] = interfaces.ContainerInfo{
			ID:     s.ID,
			Names:  cleanNames(s.Names),
			Image:  s.Image,
			State:  string(s.State),
			Status: s.Status,
		}
	}
	return infos, nil
}

// cleanNames strips the engine's leading slash from container names.
func cleanNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.TrimPrefix(n, "/")
	}
	return out
}

// StartContainer starts a stopped container.
func (m *Manager) StartContainer(ctx context.Context, idOrName string) error {
	return m.api.ContainerStart(ctx, idOrName, container.StartOptions{})
}

// StopContainer stops a container, waiting timeoutSeconds before the
// engine force-kills it.
func (m *Manager) StopContainer(ctx context.Context, idOrName string, timeoutSeconds int) error {
	return m.api.ContainerStop(ctx, idOrName, container.StopOptions{Timeout: &timeoutSeconds})
}

// RestartContainer restarts a container with the same timeout semantics
// as StopContainer.
func (m *Manager) RestartContainer(ctx context.Context, idOrName string, timeoutSeconds int) error {
	return m.api.ContainerRestart(ctx, idOrName, container.StopOptions{Timeout: &timeoutSeconds})
}

// Ping verifies the daemon is reachable.
func (m *Manager) Ping(ctx context.Context) error {
	_, err := m.api.Ping(ctx)
	return err
}

// Close releases the client.
func (m *Manager) Close() error {
	return m.api.Close()
}
