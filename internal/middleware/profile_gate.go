package middleware

import (
	"context"
	"net/http"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/auth"
)

type ProfileChecker interface {
	Exists(ctx context.Context, accountID int) (bool, error)
}

// ProfileRequired rejects requests of accounts that did not create their profile yet.
// Must run after AuthCheck.
func ProfileRequired(checker ProfileChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			accountID, ok := auth.AccountID(r.Context())
			if !ok {
				apperr.WriteError(w, apperr.ErrUnauthorized)
				return
			}

			exists, err := checker.Exists(r.Context(), accountID)
			if err != nil {
				apperr.WriteError(w, err)
				return
			}
			if !exists {
				apperr.WriteError(w, apperr.ErrProfileRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
