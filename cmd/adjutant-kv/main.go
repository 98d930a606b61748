// adjutant-kv is the key-value administration MCP server. It exposes get,
// set, del, and list_keys tools over a Redis or bbolt backend selected by
// configuration.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/storage"
	"github.com/adjutant-mcp/adjutant/internal/toolkit"
)

const defaultServerName = "Adjutant-KV"

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport instead of HTTP")
	configFile := flag.String("config", "adjutant.toml", "Path to config file")
	port := flag.String("port", "", "HTTP port (overrides config)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("adjutant-kv %s\n", config.GetFullVersion())
		return
	}

	if err := run(*configFile, *stdio, *port); err != nil {
		fmt.Fprintf(os.Stderr, "adjutant-kv: %v\n", err)
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
		Str("driver", cfg.KV.Driver).
		Msg("Starting adjutant-kv")

	// The backend must be reachable before any tool is advertised.
	store, err := storage.NewKeyValueStore(context.Background(), cfg.KV, logger)
	if err != nil {
		return fmt.Errorf("key-value backend unavailable: %w", err)
	}
	defer store.Close()

	registry := toolkit.NewRegistry()
	if err := registerTools(registry, store, cfg); err != nil {
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
