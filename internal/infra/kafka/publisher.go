// Package kafka publishes positive detections to a Kafka topic so other
// systems can consume them. It implements detection.DetectionPublisher on
// top of a sarama SyncProducer.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/etiwatch/internal/detection"
	"github.com/gabapcia/etiwatch/internal/pkg/logger"
	"github.com/gabapcia/etiwatch/internal/pkg/resilience/retry"

	"github.com/IBM/sarama"
)

const (
	clientID = "etiwatch"

	headerContentType = "content-type"
	contentTypeJSON   = "application/json"
)

// NewConfig returns the producer configuration used for detections.
//
// Every message waits for the full ISR acknowledgement; sarama retries
// transient produce errors internally.
func NewConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Net.DialTimeout = 5 * time.Second
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Retry.Backoff = 200 * time.Millisecond
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Metadata.Retry.Max = 1
	return cfg
}

// Connect creates a SyncProducer for brokers, retrying with r while the
// cluster is unreachable.
func Connect(ctx context.Context, brokers []string, cfg *sarama.Config, r retry.Retry) (sarama.SyncProducer, error) {
	var producer sarama.SyncProducer

	err := r.Execute(ctx, func() error {
		p, err := sarama.NewSyncProducer(brokers, cfg)
		if err != nil {
			logger.Warn(ctx, "kafka producer not ready",
				"kafka.brokers", brokers,
				"error", err,
			)
			return err
		}

		producer = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect to kafka: %w", err)
	}

	return producer, nil
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
}

var _ detection.DetectionPublisher = (*publisher)(nil)

// PublishDetection sends d as a JSON message keyed by its id and waits for
// the broker acknowledgement. The producer does not take a context, so ctx
// is only checked before sending.
func (p *publisher) PublishDetection(ctx context.Context, d detection.Detection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(d.ID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerContentType), Value: []byte(contentTypeJSON)},
		},
		Timestamp: d.DetectedAt,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("publish detection %s: %w", d.ID, err)
	}

	logger.Debug(ctx, "detection published",
		"detection.id", d.ID,
		"kafka.topic", p.topic,
		"kafka.partition", partition,
		"kafka.offset", offset,
	)

	return nil
}

// Close flushes and closes the underlying producer.
func (p *publisher) Close() error {
	return p.producer.Close()
}

// NewPublisher returns a publisher writing to topic through producer.
func NewPublisher(producer sarama.SyncProducer, topic string) *publisher {
	return &publisher{
		producer: producer,
		topic:    topic,
	}
}
