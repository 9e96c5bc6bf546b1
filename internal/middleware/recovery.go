package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a JSON 500 response. The request id
// is read back from the response headers, LogRequest sets it further in.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.WithFields(log.Fields{
					"request_id": w.Header().Get(RequestIDHeader),
					"method":     req.Method,
					"path":       req.URL.Path,
				}).Errorf("panic serving request: %v\n%s", rec, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				apperr.WriteError(w, fmt.Errorf("recovered panic: %v", rec))
			}()

			next.ServeHTTP(w, req)
		})
	}
}
