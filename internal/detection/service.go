package detection

import (
	"context"
	"time"

	"github.com/gabapcia/etiwatch/internal/pkg/logger"
	"github.com/gabapcia/etiwatch/internal/pkg/telemetry"

	"github.com/gagliardetto/solana-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// testPaymentAmount is the payment shown by the synthetic test notification.
const testPaymentAmount int64 = 2_000_000_000

// Service classifies webhook batches and notifies positive ones.
type Service interface {
	// Classify scores a batch without side effects besides listing lookups.
	Classify(ctx context.Context, events []Event) Result

	// Process classifies a batch and, when positive, renders and dispatches
	// exactly one notification. Dispatch failures are reported through
	// Report.Delivered and never returned.
	Process(ctx context.Context, events []Event) Report

	// NotifyTest renders and dispatches the synthetic test notification.
	NotifyTest(ctx context.Context) Report
}

type service struct {
	indicators Indicators
	scoring    Scoring

	listingChecker ListingChecker
	notifier       Notifier
	publisher      DetectionPublisher

	formatter Formatter
	now       func() time.Time
	metrics   instruments
}

var _ Service = (*service)(nil)

func (s *service) Process(ctx context.Context, events []Event) Report {
	ctx, span := telemetry.Tracer().Start(ctx, "detection.Process",
		trace.WithAttributes(attribute.Int("batch.events", len(events))),
	)
	defer span.End()

	result := s.Classify(ctx, events)
	s.metrics.recordBatch(ctx, len(events), result.Positive)

	span.SetAttributes(
		attribute.Float64("detection.confidence", result.Confidence),
		attribute.Bool("detection.positive", result.Positive),
	)

	if !result.Positive {
		logger.Debug(ctx, "batch classified as negative",
			"batch.events", len(events),
			"detection.confidence", result.Confidence,
		)
		return Report{Result: result}
	}

	logger.Info(ctx, "eti activity detected",
		"batch.events", len(events),
		"detection.confidence", result.Confidence,
		"detection.evidence", result.Evidence,
	)

	report := s.notify(ctx, result)
	s.publish(ctx, report, len(events))
	return report
}

func (s *service) NotifyTest(ctx context.Context) Report {
	return s.notify(ctx, TestResult())
}

func (s *service) notify(ctx context.Context, result Result) Report {
	message := s.formatter.Format(result)
	return Report{
		Result:    result,
		Message:   message,
		Delivered: s.dispatch(ctx, message),
	}
}

// TestResult returns the synthetic positive result used to exercise the
// notification path end to end.
func TestResult() Result {
	mint := solana.SolMint.String()
	amount := testPaymentAmount
	return Result{
		Confidence:      0.95,
		Positive:        true,
		Evidence:        []string{evidenceTestMode},
		TokenIdentifier: &mint,
		PaymentAmount:   &amount,
	}
}

type config struct {
	scoring        Scoring
	listingChecker ListingChecker
	publisher      DetectionPublisher
	linkURL        string
	now            func() time.Time
}

type Option func(*config)

// New builds the detection service.
//
// Parameters:
//   - indicators: the known ETI signals.
//   - notifier: the messaging channel positive batches are sent to.
//   - opts: optional overrides (scoring, listing registry, publisher, link base, clock).
//
// Returns:
//   - a ready to use service. Without WithListingChecker no listing is ever
//     confirmed; without WithPublisher detections are only notified.
func New(indicators Indicators, notifier Notifier, opts ...Option) *service {
	cfg := config{
		scoring:        DefaultScoring(),
		listingChecker: nopListingChecker{},
		publisher:      nil,
		linkURL:        DefaultLinkURL,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	formatter := NewFormatter(cfg.linkURL, cfg.scoring.HighConfidence)
	formatter.now = cfg.now

	return &service{
		indicators:     indicators,
		scoring:        cfg.scoring,
		listingChecker: cfg.listingChecker,
		notifier:       notifier,
		publisher:      cfg.publisher,
		formatter:      formatter,
		now:            cfg.now,
		metrics:        newInstruments(),
	}
}

func WithScoring(sc Scoring) Option {
	return func(c *config) {
		c.scoring = sc
	}
}

func WithListingChecker(lc ListingChecker) Option {
	return func(c *config) {
		c.listingChecker = lc
	}
}

func WithPublisher(p DetectionPublisher) Option {
	return func(c *config) {
		c.publisher = p
	}
}

func WithLinkURL(u string) Option {
	return func(c *config) {
		c.linkURL = u
	}
}

// WithClock overrides the time source used for message timestamps and
// detection records.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
