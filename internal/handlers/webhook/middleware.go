package webhook

import (
	"net/http"
	"time"

	"github.com/gabapcia/etiwatch/internal/pkg/logger"

	"github.com/google/uuid"
)

const headerRequestID = "X-Request-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLogging tags every request with a UUIDv7 id, attaches it to the
// request logger and logs the outcome.
func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := uuid.Must(uuid.NewV7()).String()
		w.Header().Set(headerRequestID, id)

		ctx := logger.Derive(r.Context(),
			"request.id", id,
			"http.method", r.Method,
			"http.path", r.URL.Path,
		)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Debug(ctx, "request served",
			"http.status", rec.status,
			"http.duration", time.Since(start),
		)
	})
}
