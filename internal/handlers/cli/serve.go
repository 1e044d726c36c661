package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/etiwatch/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// shutdownTimeout bounds how long in-flight webhook requests may take to
// finish once a termination signal arrives.
const shutdownTimeout = 15 * time.Second

// serveCommand returns a CLI command that runs the webhook HTTP server.
//
// Usage example:
//
//	etiwatch serve
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func serveCommand(srv HTTPServer) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Starts the webhook HTTP server that receives Helius batches.",
		Usage:       "Runs the webhook receiver. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := srv.Start(ctx); err != nil {
				return err
			}

			select {
			case sig := <-quit:
				logger.Info(ctx, "shutting down", "signal", sig.String())
			case <-ctx.Done():
				logger.Info(ctx, "shutting down", "error", ctx.Err())
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()

			return srv.Close(shutdownCtx)
		},
	}
}
