package nutrition

import (
	"context"
	"net/http"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/auth"
	"github.com/2beens/fitbuddy/internal/telemetry/metrics"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type service interface {
	AddToDraft(ctx context.Context, accountID int, in DraftItemInput) (*Draft, error)
	Draft(ctx context.Context, accountID int) (*Draft, error)
	ClearDraft(ctx context.Context, accountID int) error
	Commit(ctx context.Context, accountID int) (*Entry, error)
	Log(ctx context.Context, accountID int) ([]*Entry, error)
	Dashboard(ctx context.Context, accountID int) (*Dashboard, error)
}

type Handler struct {
	service        service
	metricsManager *metrics.Manager
}

func NewHandler(service service, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (h *Handler) SetupCatalogRoutes(r *mux.Router) {
	r.HandleFunc("/food/catalog", h.HandleCatalog).Methods("GET", "OPTIONS").Name("food-catalog")
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/food/draft", h.HandleDraft).Methods("GET", "OPTIONS").Name("get-meal-draft")
	r.HandleFunc("/food/draft", h.HandleAddToDraft).Methods("POST", "OPTIONS").Name("add-to-meal-draft")
	r.HandleFunc("/food/draft", h.HandleClearDraft).Methods("DELETE", "OPTIONS").Name("clear-meal-draft")
	r.HandleFunc("/food/log", h.HandleLog).Methods("GET", "OPTIONS").Name("food-log")
	r.HandleFunc("/food/log", h.HandleCommit).Methods("POST", "OPTIONS").Name("commit-meal")
	r.HandleFunc("/nutrition/dashboard", h.HandleDashboard).Methods("GET", "OPTIONS").Name("nutrition-dashboard")
}

func (h *Handler) HandleCatalog(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponse(w, http.StatusOK, Catalog())
}

func (h *Handler) HandleDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.draft")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	draft, err := h.service.Draft(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, draft)
}

func (h *Handler) HandleAddToDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.draft.add")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	var in DraftItemInput
	if err := pkg.DecodeJSON(r.Body, &in); err != nil {
		log.Errorf("add to draft, unmarshal json params: %s", err)
		apperr.WriteError(w, apperr.Invalid("body", "invalid json"))
		return
	}

	draft, err := h.service.AddToDraft(ctx, accountID, in)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, draft)
}

func (h *Handler) HandleClearDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.draft.clear")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	if err := h.service.ClearDraft(ctx, accountID); err != nil {
		apperr.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleCommit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.commit")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	entry, err := h.service.Commit(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	h.metricsManager.CounterMealsLogged.Inc()
	pkg.WriteJSONResponse(w, http.StatusCreated, entry)
}

func (h *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.log")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	entries, err := h.service.Log(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	if entries == nil {
		entries = []*Entry{}
	}

	pkg.WriteJSONResponse(w, http.StatusOK, entries)
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.dashboard")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	d, err := h.service.Dashboard(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, d)
}
