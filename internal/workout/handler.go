package workout

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
	CreatePlan(ctx context.Context, accountID int, in PlanInput) (*Plan, error)
	Plans(ctx context.Context, accountID int) ([]*Plan, error)
	Start(ctx context.Context, accountID int, planName string) (*ActiveWorkout, error)
	Complete(ctx context.Context, accountID int, group MuscleGroup) (*ActiveWorkout, error)
	Active(ctx context.Context, accountID int) (*ActiveView, error)
	Finish(ctx context.Context, accountID int) (*Session, error)
	Cancel(ctx context.Context, accountID int) error
	History(ctx context.Context, accountID int) ([]*Session, error)
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

// SetupCatalogRoutes registers the public exercise catalog.
func (h *Handler) SetupCatalogRoutes(r *mux.Router) {
	r.HandleFunc("/workouts/exercises", h.HandleExercises).Methods("GET", "OPTIONS").Name("workout-exercises")
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts/plans", h.HandleListPlans).Methods("GET", "OPTIONS").Name("list-workout-plans")
	r.HandleFunc("/workouts/plans", h.HandleCreatePlan).Methods("POST", "OPTIONS").Name("create-workout-plan")
	r.HandleFunc("/workouts/active", h.HandleActive).Methods("GET", "OPTIONS").Name("active-workout")
	r.HandleFunc("/workouts/active", h.HandleStart).Methods("POST", "OPTIONS").Name("start-workout")
	r.HandleFunc("/workouts/active", h.HandleCancel).Methods("DELETE", "OPTIONS").Name("cancel-workout")
	r.HandleFunc("/workouts/active/complete", h.HandleComplete).Methods("POST", "OPTIONS").Name("complete-muscle-group")
	r.HandleFunc("/workouts/active/finish", h.HandleFinish).Methods("POST", "OPTIONS").Name("finish-workout")
	r.HandleFunc("/workouts/history", h.HandleHistory).Methods("GET", "OPTIONS").Name("workout-history")
}

func (h *Handler) HandleExercises(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponse(w, http.StatusOK, Catalog())
}

func (h *Handler) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.plans.list")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	plans, err := h.service.Plans(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	if plans == nil {
		plans = []*Plan{}
	}

	pkg.WriteJSONResponse(w, http.StatusOK, plans)
}

func (h *Handler) HandleCreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.plans.create")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	var in PlanInput
	if err := pkg.DecodeJSON(r.Body, &in); err != nil {
		log.Errorf("create workout plan, unmarshal json params: %s", err)
		apperr.WriteError(w, apperr.Invalid("body", "invalid json"))
		return
	}

	plan, err := h.service.CreatePlan(ctx, accountID, in)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusCreated, plan)
}

func (h *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.active")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	view, err := h.service.Active(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, view)
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.start")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	var req struct {
		Plan string `json:"plan"`
	}
	if err := pkg.DecodeJSON(r.Body, &req); err != nil || req.Plan == "" {
		apperr.WriteError(w, apperr.Invalid("plan", "is required"))
		return
	}

	aw, err := h.service.Start(ctx, accountID, req.Plan)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusCreated, aw)
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.complete")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	var req struct {
		Group MuscleGroup `json:"group"`
	}
	if err := pkg.DecodeJSON(r.Body, &req); err != nil || req.Group == "" {
		apperr.WriteError(w, apperr.Invalid("group", "is required"))
		return
	}

	aw, err := h.service.Complete(ctx, accountID, req.Group)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, aw)
}

func (h *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.finish")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	session, err := h.service.Finish(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	h.metricsManager.CounterWorkoutsFinished.Inc()
	h.metricsManager.HistogramWorkoutDuration.Observe(session.Duration().Minutes())

	log.Debugf("account %d finished workout [%s] in %.0fs", accountID, session.PlanName, session.DurationSeconds)
	pkg.WriteJSONResponse(w, http.StatusCreated, session)
}

func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.cancel")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	if err := h.service.Cancel(ctx, accountID); err != nil {
		apperr.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.history")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	sessions, err := h.service.History(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	if sessions == nil {
		sessions = []*Session{}
	}

	pkg.WriteJSONResponse(w, http.StatusOK, sessions)
}
