package progress

import (
	"context"
	"net/http"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/auth"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type service interface {
	Add(ctx context.Context, accountID int, in Input) (*Record, error)
	History(ctx context.Context, accountID int) (*History, error)
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
	r.HandleFunc("/progress", h.HandleList).Methods("GET", "OPTIONS").Name("list-progress")
	r.HandleFunc("/progress", h.HandleAdd).Methods("POST", "OPTIONS").Name("add-progress")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.list")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	history, err := h.service.History(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, history)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.add")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	var in Input
	if err := pkg.DecodeJSON(r.Body, &in); err != nil {
		log.Errorf("add progress, unmarshal json params: %s", err)
		apperr.WriteError(w, apperr.Invalid("body", "invalid json"))
		return
	}

	record, err := h.service.Add(ctx, accountID, in)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusCreated, record)
}
