package main

import (
	"context"
	"fmt"

	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
	"github.com/adjutant-mcp/adjutant/internal/toolkit"
)

func handleListContainers(runtime interfaces.ContainerRuntime) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		all := args.GetBool("all", false)
		containers, err := runtime.ListContainers(ctx, all)
		if err != nil {
			return "", fmt.Errorf("failed to list containers: %w", err)
		}
		return formatContainerList(containers, all), nil
	}
}

func handleStartContainer(runtime interfaces.ContainerRuntime) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		id := args.GetString("id_or_name", "")
		if err := runtime.StartContainer(ctx, id); err != nil {
			return "", fmt.Errorf("failed to start container %q: %w", id, err)
		}
		return fmt.Sprintf("Started container %q", id), nil
	}
}

func handleStopContainer(runtime interfaces.ContainerRuntime) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		id := args.GetString("id_or_name", "")
		timeout := args.GetInt("timeout_seconds", 10)
		if err := runtime.StopContainer(ctx, id, timeout); err != nil {
			return "", fmt.Errorf("failed to stop container %q: %w", id, err)
		}
		return fmt.Sprintf("Stopped container %q", id), nil
	}
}

func handleRestartContainer(runtime interfaces.ContainerRuntime) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		id := args.GetString("id_or_name", "")
		timeout := args.GetInt("timeout_seconds", 10)
		if err := runtime.RestartContainer(ctx, id, timeout); err != nil {
			return "", fmt.Errorf("failed to restart container %q: %w", id, err)
		}
		return fmt.Sprintf("Restarted container %q", id), nil
	}
}

func handleGetVersion(cfg *config.Config) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		target := cfg.Docker.Host
		if target == "" {
			target = "default socket"
		}
		return fmt.Sprintf("%s\nVersion: %s\nBackend: docker (%s)\nStatus: OK",
			cfg.Server.Name, config.GetFullVersion(), target), nil
	}
}
