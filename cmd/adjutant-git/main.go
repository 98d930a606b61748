// adjutant-git is the version-control administration MCP server. It
// exposes status, log, diff, branch, and remote-sync tools over one git
// working tree opened at startup.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/gitrepo"
	"github.com/adjutant-mcp/adjutant/internal/toolkit"
)

const defaultServerName = "Adjutant-Git"

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport instead of HTTP")
	configFile := flag.String("config", "adjutant.toml", "Path to config file")
	port := flag.String("port", "", "HTTP port (overrides config)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("adjutant-git %s\n", config.GetFullVersion())
		return
	}

	if err := run(*configFile, *stdio, *port); err != nil {
		fmt.Fprintf(os.Stderr, "adjutant-git: %v\n", err)
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
		Str("repo", cfg.Git.RepoPath).
		Msg("Starting adjutant-git")

	// The working tree must open before any tool is advertised.
	repo, err := gitrepo.Open(cfg.Git, logger)
	if err != nil {
		return fmt.Errorf("git backend unavailable: %w", err)
	}

	registry := toolkit.NewRegistry()
	if err := registerTools(registry, repo, cfg); err != nil {
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
