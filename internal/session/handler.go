package session

import (
	"context"
	"net/http"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/auth"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	"github.com/gorilla/mux"
)

type loader interface {
	Load(ctx context.Context, accountID int) (*State, error)
}

type Handler struct {
	loader loader
}

func NewHandler(loader loader) *Handler {
	return &Handler{
		loader: loader,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/session", h.HandleGet).Methods("GET", "OPTIONS").Name("session")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.get")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	state, err := h.loader.Load(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, state)
}
