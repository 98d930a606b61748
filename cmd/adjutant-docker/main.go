// adjutant-docker is the container administration MCP server. It exposes
// list, start, stop, and restart tools over the local Docker daemon (or
// the host named in configuration).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/docker"
	"github.com/adjutant-mcp/adjutant/internal/toolkit"
)

const defaultServerName = "Adjutant-Docker"

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport instead of HTTP")
	configFile := flag.String("config", "adjutant.toml", "Path to config file")
	port := flag.String("port", "", "HTTP port (overrides config)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("adjutant-docker %s\n", config.GetFullVersion())
		return
	}

	if err := run(*configFile, *stdio, *port); err != nil {
		fmt.Fprintf(os.Stderr, "adjutant-docker: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string, stdio bool, portOverride string) error {
	cfg, err := config.LoadFromFile(configFile)
	if err != nil {
		return err
	}
	config.ApplyFlagOverrides(cfg, portOverride, "")
	if cfg.Server.Name == "" {
		cfg.Server.Name = defaultServerName
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)
	logger.Info().
		Str("version", config.GetVersion()).
		Str("host", cfg.Docker.Host).
		Msg("Starting adjutant-docker")

	// The daemon must answer a ping before any tool is advertised.
	runtime, err := docker.NewManager(context.Background(), cfg.Docker, logger)
	if err != nil {
		return fmt.Errorf("docker backend unavailable: %w", err)
	}
	defer runtime.Close()

	registry := toolkit.NewRegistry()
	if err := registerTools(registry, runtime, cfg); err != nil {
		return err
	}
	dispatcher := toolkit.NewDispatcher(registry, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		config.GetVersion(),
		server.WithToolCapabilities(true),
	)
	count := dispatcher.Attach(mcpServer)
	logger.Info().Int("tools", count).Msg("Registered tools")

	return toolkit.Serve(mcpServer, toolkit.ServeOptions{
		Stdio:  stdio,
		Addr:   ":" + cfg.Server.Port,
		Logger: logger,
	})
}
