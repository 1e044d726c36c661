package http

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func TestNewClient(t *testing.T) {
	t.Run("uses default configuration when no options are provided", func(t *testing.T) {
		client := NewClient()

		require.NotNil(t, client)
		assert.Equal(t, 5*time.Second, client.HTTPClient.Timeout, "default HTTP timeout should be 5s")
		assert.Equal(t, 1*time.Second, client.RetryWaitMin)
		assert.Equal(t, 5*time.Second, client.RetryWaitMax)
		assert.Equal(t, 0, client.RetryMax, "retries are disabled by default")
		assert.Nil(t, client.Logger)
	})

	t.Run("applies provided options", func(t *testing.T) {
		client := NewClient(
			WithTimeout(10*time.Second),
			WithRetryWaitMin(200*time.Millisecond),
			WithRetryWaitMax(2*time.Second),
			WithRetryMax(3),
		)

		assert.Equal(t, 10*time.Second, client.HTTPClient.Timeout)
		assert.Equal(t, 200*time.Millisecond, client.RetryWaitMin)
		assert.Equal(t, 2*time.Second, client.RetryWaitMax)
		assert.Equal(t, 3, client.RetryMax)
	})

	t.Run("instruments the transport", func(t *testing.T) {
		client := NewClient()

		_, ok := client.HTTPClient.Transport.(*otelhttp.Transport)
		assert.True(t, ok, "transport should be wrapped by otelhttp")
	})

	t.Run("performs a single attempt by default", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		req, err := retryablehttp.NewRequestWithContext(t.Context(), http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		res, err := NewClient().Do(req)
		if res != nil {
			res.Body.Close()
		}

		assert.Error(t, err, "a 5xx with no retries left surfaces as an error")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("honors the timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer server.Close()

		req, err := retryablehttp.NewRequestWithContext(t.Context(), http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		start := time.Now()
		res, err := NewClient(WithTimeout(50 * time.Millisecond)).Do(req)
		if res != nil {
			res.Body.Close()
		}

		assert.Error(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})
}

func TestOptions(t *testing.T) {
	cfg := &config{}

	WithTimeout(7 * time.Second)(cfg)
	WithRetryWaitMin(500 * time.Millisecond)(cfg)
	WithRetryWaitMax(8 * time.Second)(cfg)
	WithRetryMax(5)(cfg)

	assert.Equal(t, 7*time.Second, cfg.timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.retryWaitMin)
	assert.Equal(t, 8*time.Second, cfg.retryWaitMax)
	assert.Equal(t, 5, cfg.retryMax)
}
