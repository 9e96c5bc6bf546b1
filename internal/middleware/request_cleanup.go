package middleware

import (
	"io"
	"net/http"
)

// maxDrainBytes caps how much of an unread body is discarded. Anything larger
// is left to the server to close with the connection.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest discards what a handler left unread, so the connection can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			_, _ = io.CopyN(io.Discard, r.Body, maxDrainBytes)
			_ = r.Body.Close()
		})
	}
}
