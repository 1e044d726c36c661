package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/etiwatch/internal/detection"

	"github.com/urfave/cli/v3"
)

// ErrNotDelivered is returned when the messaging channel rejected a notification.
var ErrNotDelivered = errors.New("notification not delivered")

// notifyTestCommand returns a CLI command that dispatches the synthetic test
// notification, useful to check credentials.
//
// Usage example:
//
//	etiwatch notify-test
func notifyTestCommand(detector detection.Service) *cli.Command {
	return &cli.Command{
		Name:        "notify-test",
		Description: "Sends a fixed test notification to the configured Telegram channel.",
		Usage:       "Checks the Telegram credentials by sending one test message.",
		Action: func(ctx context.Context, c *cli.Command) error {
			report := detector.NotifyTest(ctx)
			if !report.Delivered {
				return ErrNotDelivered
			}

			_, err := fmt.Fprintln(c.Root().Writer, "test notification sent")
			return err
		},
	}
}
