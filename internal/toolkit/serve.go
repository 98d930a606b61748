package toolkit

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/adjutant-mcp/adjutant/internal/common"
)

// ServeOptions selects the transport a server binary runs on.
type ServeOptions struct {
	Stdio  bool   // stdio transport instead of HTTP
	Addr   string // HTTP listen address, e.g. ":4280"
	Logger *common.Logger
}

// Serve runs the MCP server until the transport closes or the process is
// interrupted, then returns so callers can release backend handles via
// their deferred cleanup. Stdio reads stdin and writes stdout; HTTP uses
// the stateless streamable transport with graceful shutdown on
// SIGINT/SIGTERM.
func Serve(s *server.MCPServer, opts ServeOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	if opts.Stdio {
		logger.Info().Msg("serving on stdio")
		return server.ServeStdio(s)
	}

	httpServer := server.NewStreamableHTTPServer(s,
		server.WithStateLess(true),
	)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", opts.Addr).Msg("serving streamable HTTP")
		errCh <- httpServer.Start(opts.Addr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case sig := <-sigChan:
		logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Warn().Str("error", err.Error()).Msg("server shutdown failed")
		}
		return nil
	}
}
