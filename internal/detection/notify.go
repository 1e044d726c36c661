package detection

import (
	"context"

	"github.com/gabapcia/etiwatch/internal/pkg/logger"

	"github.com/google/uuid"
)

// Notifier delivers a rendered message to the messaging channel.
type Notifier interface {
	// Notify sends text once, without retrying. It returns nil only when the
	// channel acknowledged the message with a success status.
	Notify(ctx context.Context, text string) error
}

// DetectionPublisher emits positive detections to a downstream event stream.
type DetectionPublisher interface {
	PublishDetection(ctx context.Context, d Detection) error
}

// dispatch sends message and reports whether it was delivered. A failure is
// logged and never propagated.
func (s *service) dispatch(ctx context.Context, message string) bool {
	if err := s.notifier.Notify(ctx, message); err != nil {
		s.metrics.recordNotification(ctx, outcomeError)
		logger.Error(ctx, "notification dispatch failed", "error", err)
		return false
	}

	s.metrics.recordNotification(ctx, outcomeDelivered)
	logger.Info(ctx, "notification delivered")
	return true
}

// publish emits report as a Detection when a publisher is configured.
// Failures are logged and never propagated.
func (s *service) publish(ctx context.Context, report Report, eventCount int) {
	if s.publisher == nil {
		return
	}

	d := Detection{
		ID:         uuid.Must(uuid.NewV7()).String(),
		DetectedAt: s.now().UTC(),
		EventCount: eventCount,
		Delivered:  report.Delivered,
		Result:     report.Result,
	}

	if err := s.publisher.PublishDetection(ctx, d); err != nil {
		logger.Error(ctx, "error publishing detection",
			"detection.id", d.ID,
			"error", err,
		)
	}
}
