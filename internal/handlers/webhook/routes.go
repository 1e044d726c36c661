package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gabapcia/etiwatch/internal/detection"
	"github.com/gabapcia/etiwatch/internal/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	serviceLabel = "ETI Monitor Webhook"

	statusRunning = "running"
	statusSuccess = "success"
)

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type testResponse struct {
	Message   string `json:"message"`
	Delivered bool   `json:"delivered"`
}

type debugResponse struct {
	Received  bool   `json:"received"`
	DataType  string `json:"data_type"`
	DataSize  int    `json:"data_size"`
	Timestamp string `json:"timestamp"`
}

// Handler returns the instrumented router.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("POST /webhook", s.handleWebhook)
	mux.HandleFunc("GET /test", s.handleTest)
	mux.HandleFunc("POST /debug", s.handleDebug)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	return otelhttp.NewHandler(withRequestLogging(mux), "etiwatch",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, healthResponse{
		Status:    statusRunning,
		Service:   serviceLabel,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	})
}

// handleWebhook acknowledges every decodable batch with 200, whatever the
// classification or notification outcome, so the provider never retries.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := readBody(w, r)
	if err != nil {
		logger.Warn(ctx, "error reading webhook body", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	events, err := detection.DecodeBatch(body)
	if err != nil {
		logger.Warn(ctx, "rejecting webhook payload", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	logger.Debug(ctx, "webhook batch received", "batch.events", len(events))

	// outbound calls must finish even if the provider hangs up
	report := s.detector.Process(context.WithoutCancel(ctx), events)
	if report.Result.Positive {
		logger.Info(ctx, "webhook batch processed",
			"detection.confidence", report.Result.Confidence,
			"notification.delivered", report.Delivered,
		)
	}

	writeJSON(ctx, w, http.StatusOK, statusResponse{Status: statusSuccess})
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report := s.detector.NotifyTest(context.WithoutCancel(ctx))

	message := "test notification sent"
	if !report.Delivered {
		message = "test notification failed"
	}

	writeJSON(ctx, w, http.StatusOK, testResponse{Message: message, Delivered: report.Delivered})
}

func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := readBody(w, r)
	if err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if !json.Valid(body) {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: detection.ErrMalformedPayload.Error()})
		return
	}

	logger.Info(ctx, "debug payload received", "debug.payload", json.RawMessage(body))

	writeJSON(ctx, w, http.StatusOK, debugResponse{
		Received:  true,
		DataType:  jsonKind(body),
		DataSize:  len(body),
		Timestamp: s.now().UTC().Format(time.RFC3339),
	})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errors.New("payload too large")
		}
		return nil, err
	}
	return body, nil
}

// jsonKind names the top level type of a valid JSON document.
func jsonKind(body []byte) string {
	body = bytes.TrimSpace(body)
	switch body[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "error writing response", "error", err)
	}
}
