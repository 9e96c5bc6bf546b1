package account

import (
	"context"
	"net/http"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/auth"
	"github.com/2beens/fitbuddy/internal/middleware"
	"github.com/2beens/fitbuddy/internal/telemetry/metrics"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type service interface {
	Register(ctx context.Context, in RegisterInput) (*Account, error)
	Login(ctx context.Context, in LoginInput) (string, *Account, error)
	Logout(ctx context.Context, token string) error
	Delete(ctx context.Context, accountID int) error
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the /a endpoints behind a rate limit, and account deletion.
func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) {
	accountSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	accountSubrouter.
		HandleFunc("/register", h.HandleRegister).
		Methods("POST", "OPTIONS").Name("register")
	accountSubrouter.
		HandleFunc("/login", h.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	accountSubrouter.
		HandleFunc("/logout", h.HandleLogout).
		Methods("POST", "GET", "OPTIONS").Name("logout")

	// rate limit the credential endpoints to prevent abuse
	accountSubrouter.Use(middleware.RateLimit(rateLimiter, "account", allowedPerMin, metricsManager))

	mainRouter.HandleFunc("/account", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-account")
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.register")
	defer span.End()

	var in RegisterInput
	if err := pkg.DecodeJSON(r.Body, &in); err != nil {
		log.Errorf("register, unmarshal json params: %s", err)
		apperr.WriteError(w, apperr.Invalid("body", "invalid json"))
		return
	}

	acc, err := h.service.Register(ctx, in)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusCreated, acc)
}

type loginResponse struct {
	Token     string `json:"token"`
	AccountID int    `json:"accountId"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.login")
	defer span.End()

	var in LoginInput
	if err := pkg.DecodeJSON(r.Body, &in); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		apperr.WriteError(w, apperr.Invalid("body", "invalid json"))
		return
	}

	token, acc, err := h.service.Login(ctx, in)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSONResponse(w, http.StatusOK, loginResponse{
		Token:     token,
		AccountID: acc.ID,
	})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.logout")
	defer span.End()

	authToken := r.Header.Get(middleware.AuthTokenHeader)
	if authToken == "" {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	if err := h.service.Logout(ctx, authToken); err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.delete")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	if err := h.service.Delete(ctx, accountID); err != nil {
		apperr.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
