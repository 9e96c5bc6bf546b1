package profile

import (
	"context"
	"net/http"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/auth"
	"github.com/2beens/fitbuddy/internal/bodymetrics"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type service interface {
	Save(ctx context.Context, accountID int, in Input) (*Profile, error)
	Get(ctx context.Context, accountID int) (*Profile, error)
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

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/profile", h.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", h.HandleSave).Methods("PUT", "OPTIONS").Name("save-profile")
	r.HandleFunc("/profile", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-profile")
}

type profileResponse struct {
	Profile *Profile            `json:"profile"`
	Targets bodymetrics.Targets `json:"targets"`
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	p, err := h.service.Get(ctx, accountID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, profileResponse{
		Profile: p,
		Targets: p.Targets(),
	})
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.save")
	defer span.End()

	accountID, ok := auth.AccountID(ctx)
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthorized)
		return
	}

	var in Input
	if err := pkg.DecodeJSON(r.Body, &in); err != nil {
		log.Errorf("save profile, unmarshal json params: %s", err)
		apperr.WriteError(w, apperr.Invalid("body", "invalid json"))
		return
	}

	p, err := h.service.Save(ctx, accountID, in)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, profileResponse{
		Profile: p,
		Targets: p.Targets(),
	})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.delete")
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

	log.Debugf("profile of account %d deleted", accountID)
	w.WriteHeader(http.StatusNoContent)
}
