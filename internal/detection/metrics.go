package detection

import (
	"context"

	"github.com/gabapcia/etiwatch/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	outcomeConfirmed   = "confirmed"
	outcomeUnconfirmed = "unconfirmed"
	outcomeError       = "error"
	outcomeDelivered   = "delivered"
)

var outcomeKey = attribute.Key("outcome")

// instruments groups the counters recorded by the service.
type instruments struct {
	batches       metric.Int64Counter
	events        metric.Int64Counter
	detections    metric.Int64Counter
	lookups       metric.Int64Counter
	notifications metric.Int64Counter
}

// newInstruments registers the counters on the global meter. A counter that
// can not be created falls back to a no-op so recording never fails.
func newInstruments() instruments {
	m := telemetry.Meter()
	fallback := noop.NewMeterProvider().Meter(telemetry.ScopeName)

	counter := func(name, desc string) metric.Int64Counter {
		c, err := m.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			c, _ = fallback.Int64Counter(name)
		}
		return c
	}

	return instruments{
		batches:       counter("etiwatch.batches", "Webhook batches classified"),
		events:        counter("etiwatch.events", "Events classified"),
		detections:    counter("etiwatch.detections", "Batches classified as positive"),
		lookups:       counter("etiwatch.lookups", "Listing lookups by outcome"),
		notifications: counter("etiwatch.notifications", "Notification dispatches by outcome"),
	}
}

func (i instruments) recordBatch(ctx context.Context, events int, positive bool) {
	i.batches.Add(ctx, 1)
	i.events.Add(ctx, int64(events))
	if positive {
		i.detections.Add(ctx, 1)
	}
}

func (i instruments) recordLookup(ctx context.Context, outcome string) {
	i.lookups.Add(ctx, 1, metric.WithAttributes(outcomeKey.String(outcome)))
}

func (i instruments) recordNotification(ctx context.Context, outcome string) {
	i.notifications.Add(ctx, 1, metric.WithAttributes(outcomeKey.String(outcome)))
}
