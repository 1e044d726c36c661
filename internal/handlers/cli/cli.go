package cli

import (
	"context"
	"os"

	"github.com/gabapcia/etiwatch/internal/detection"

	"github.com/urfave/cli/v3"
)

// HTTPServer is the webhook listener started by the serve command.
type HTTPServer interface {
	Start(ctx context.Context) error
	Close(ctx context.Context) error
}

// Run initializes and executes the etiwatch CLI application.
//
// It registers all available commands, including:
//
//   - `serve`: Starts the webhook HTTP server.
//   - `notify-test`: Sends the synthetic test notification once.
//   - `classify`: Classifies a batch read from a file or stdin.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - detector: The detection service used by every command.
//   - srv: The HTTP server started by the serve command.
func Run(ctx context.Context, detector detection.Service, srv HTTPServer) error {
	return newApp(detector, srv).Run(ctx, os.Args)
}

func newApp(detector detection.Service, srv HTTPServer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "etiwatch",
		Description:           "Detects DexScreener Enhanced Token Info activity from Helius webhooks and notifies Telegram.",
		Usage:                 "etiwatch [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(srv),
			notifyTestCommand(detector),
			classifyCommand(detector),
		},
	}
}
