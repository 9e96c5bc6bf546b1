package middleware

import (
	"crypto/rand"
	"net/http"
	"time"

	"github.com/oklog/ulid"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-Id"

func newRequestID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// LogRequest tags every request with a ULID request id and logs it once served.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = newRequestID()
			}
			w.Header().Set(RequestIDHeader, requestID)

			start := time.Now()
			resp := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(resp, r)

			log.WithFields(log.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     resp.statusCode,
				"duration":   time.Since(start).String(),
				"ua":         r.Header.Get("User-Agent"),
			}).Trace(" ====> request served")
		})
	}
}
