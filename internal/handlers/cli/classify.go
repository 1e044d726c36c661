package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/gabapcia/etiwatch/internal/detection"

	"github.com/urfave/cli/v3"
)

const stdinPath = "-"

// classifyCommand returns a CLI command that classifies a stored webhook
// batch and prints the result as JSON.
//
// Usage example:
//
//	etiwatch classify --file batch.json
//	cat batch.json | etiwatch classify --file - --notify
func classifyCommand(detector detection.Service) *cli.Command {
	return &cli.Command{
		Name:        "classify",
		Description: "Classifies a Helius webhook payload and prints the result.",
		Usage:       "Reads a batch from a file (or stdin with -) and scores it. With --notify, positive batches are dispatched.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "Path of the JSON payload, or - for stdin",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "notify",
				Usage: "Dispatch the notification when the batch is positive",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := readPayload(c.Root().Reader, c.String("file"))
			if err != nil {
				return err
			}

			events, err := detection.DecodeBatch(data)
			if err != nil {
				return err
			}

			var out any
			if c.Bool("notify") {
				out = detector.Process(ctx, events)
			} else {
				out = detector.Classify(ctx, events)
			}

			enc := json.NewEncoder(c.Root().Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func readPayload(stdin io.Reader, path string) ([]byte, error) {
	if path == stdinPath {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}
