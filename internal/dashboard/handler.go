package dashboard

import (
	"context"
	"net/http"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/auth"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	"github.com/gorilla/mux"
)

type service interface {
	Get(ctx context.Context, accountID int) (*Dashboard, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/dashboard", h.HandleGet).Methods("GET", "OPTIONS").Name("dashboard")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.get")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	d, err := h.service.Get(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, d)
}
