package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gabapcia/etiwatch/internal/detection"
	"github.com/gabapcia/etiwatch/internal/pkg/resilience/retry"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDetection() detection.Detection {
	return detection.Detection{
		ID:         "0190c1b4-9f5e-7a43-8f0a-2f1b3c4d5e6f",
		DetectedAt: time.Date(2025, time.March, 14, 13, 4, 5, 0, time.UTC),
		EventCount: 2,
		Delivered:  true,
		Result:     detection.TestResult(),
	}
}

func TestPublisher_PublishDetection(t *testing.T) {
	t.Run("sends the detection as json", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, NewConfig())
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var got map[string]any
			require.NoError(t, json.Unmarshal(val, &got))

			assert.Equal(t, "0190c1b4-9f5e-7a43-8f0a-2f1b3c4d5e6f", got["id"])
			assert.Equal(t, "2025-03-14T13:04:05Z", got["detectedAt"])
			assert.Equal(t, float64(2), got["eventCount"])
			assert.Equal(t, true, got["delivered"])
			assert.Equal(t, 0.95, got["confidence"])
			assert.Equal(t, true, got["positive"])
			assert.Equal(t, []any{"test_mode"}, got["evidence"])
			assert.Equal(t, "So11111111111111111111111111111111111111112", got["tokenIdentifier"])
			assert.Equal(t, float64(2000000000), got["paymentAmount"])
			return nil
		})

		p := NewPublisher(producer, "eti.detections")
		t.Cleanup(func() { _ = p.Close() })

		err := p.PublishDetection(t.Context(), testDetection())

		assert.NoError(t, err)
	})

	t.Run("returns producer errors", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, NewConfig())
		producer.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)

		p := NewPublisher(producer, "eti.detections")
		t.Cleanup(func() { _ = p.Close() })

		err := p.PublishDetection(t.Context(), testDetection())

		assert.ErrorIs(t, err, sarama.ErrNotLeaderForPartition)
	})

	t.Run("does not send with a cancelled context", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, NewConfig())

		p := NewPublisher(producer, "eti.detections")
		t.Cleanup(func() { _ = p.Close() })

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := p.PublishDetection(ctx, testDetection())

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForAll, cfg.Producer.RequiredAcks)
	assert.Equal(t, clientID, cfg.ClientID)
}

func TestConnect(t *testing.T) {
	t.Run("gives up after the configured attempts", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Metadata.Retry.Max = 0
		cfg.Net.DialTimeout = 100 * time.Millisecond

		var attempts uint
		r := retry.New(
			retry.WithAttempts(2),
			retry.WithDelay(time.Millisecond),
			retry.WithOnRetry(func(uint, error) { attempts++ }),
		)

		producer, err := Connect(t.Context(), []string{"127.0.0.1:1"}, cfg, r)

		assert.Error(t, err)
		assert.Nil(t, producer)
		assert.Equal(t, uint(2), attempts)
	})
}
