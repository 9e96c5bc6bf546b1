package wellness

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
	AddWater(ctx context.Context, accountID int, in WaterInput) (*WaterRecord, error)
	AddSleep(ctx context.Context, accountID int, in SleepInput) (*SleepRecord, error)
	Water(ctx context.Context, accountID int) ([]*WaterRecord, error)
	Sleep(ctx context.Context, accountID int) ([]*SleepRecord, error)
	Today(ctx context.Context, accountID int) (*Today, error)
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
	r.HandleFunc("/water", h.HandleWater).Methods("GET", "OPTIONS").Name("list-water")
	r.HandleFunc("/water", h.HandleAddWater).Methods("POST", "OPTIONS").Name("add-water")
	r.HandleFunc("/sleep", h.HandleSleep).Methods("GET", "OPTIONS").Name("list-sleep")
	r.HandleFunc("/sleep", h.HandleAddSleep).Methods("POST", "OPTIONS").Name("add-sleep")
	r.HandleFunc("/wellness/today", h.HandleToday).Methods("GET", "OPTIONS").Name("wellness-today")
}

func (h *Handler) HandleWater(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellness.water.list")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	records, err := h.service.Water(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	if records == nil {
		records = []*WaterRecord{}
	}
	pkg.WriteJSONResponse(w, http.StatusOK, records)
}

func (h *Handler) HandleAddWater(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellness.water.add")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	var in WaterInput
	if err := pkg.DecodeJSON(r.Body, &in); err != nil {
		apperr.WriteError(w, apperr.Invalid("body", "invalid json"))
		return
	}

	rec, err := h.service.AddWater(ctx, accountID, in)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusCreated, rec)
}

func (h *Handler) HandleSleep(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellness.sleep.list")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	records, err := h.service.Sleep(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	if records == nil {
		records = []*SleepRecord{}
	}
	pkg.WriteJSONResponse(w, http.StatusOK, records)
}

func (h *Handler) HandleAddSleep(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellness.sleep.add")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	var in SleepInput
	if err := pkg.DecodeJSON(r.Body, &in); err != nil {
		apperr.WriteError(w, apperr.Invalid("body", "invalid json"))
		return
	}

	rec, err := h.service.AddSleep(ctx, accountID, in)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusCreated, rec)
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellness.today")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	today, err := h.service.Today(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, today)
}
