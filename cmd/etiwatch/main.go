package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gabapcia/etiwatch/internal/config"
	"github.com/gabapcia/etiwatch/internal/detection"
	"github.com/gabapcia/etiwatch/internal/handlers/cli"
	"github.com/gabapcia/etiwatch/internal/handlers/webhook"
	"github.com/gabapcia/etiwatch/internal/infra/dexscreener"
	"github.com/gabapcia/etiwatch/internal/infra/kafka"
	"github.com/gabapcia/etiwatch/internal/infra/telegram"
	"github.com/gabapcia/etiwatch/internal/pkg/logger"
	"github.com/gabapcia/etiwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/etiwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/etiwatch/internal/pkg/transport/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	opts := []detection.Option{
		detection.WithScoring(scoring(cfg.Indicators)),
		detection.WithLinkURL(cfg.DexScreener.LinkURL),
		detection.WithListingChecker(dexscreener.NewClient(
			transporthttp.NewClient(transporthttp.WithTimeout(cfg.DexScreener.Timeout)),
			cfg.DexScreener.OrdersURL,
		)),
	}

	if cfg.Kafka.Enabled() {
		producer, err := kafka.Connect(ctx, cfg.Kafka.Brokers, kafka.NewConfig(), retry.New(
			retry.WithAttempts(5),
			retry.WithDelay(500*time.Millisecond),
		))
		if err != nil {
			return err
		}

		publisher := kafka.NewPublisher(producer, cfg.Kafka.Topic)
		defer publisher.Close()

		opts = append(opts, detection.WithPublisher(publisher))
	}

	notifier := telegram.NewClient(
		transporthttp.NewClient(transporthttp.WithTimeout(cfg.Telegram.Timeout)),
		cfg.Telegram.APIURL,
		cfg.Telegram.BotToken,
		cfg.Telegram.ChannelID,
	)

	indicators := detection.NewIndicators(
		cfg.Indicators.PaymentAmounts,
		cfg.Indicators.ProgramIDs,
		cfg.Indicators.KnownAddresses,
	)

	detector := detection.New(indicators, notifier, opts...)
	srv := webhook.New(":"+strconv.Itoa(cfg.Port), detector)

	return cli.Run(ctx, detector, srv)
}

func scoring(cfg config.Indicators) detection.Scoring {
	sc := detection.DefaultScoring()
	sc.Threshold = cfg.Threshold
	sc.HighConfidence = cfg.HighConfidence
	return sc
}
