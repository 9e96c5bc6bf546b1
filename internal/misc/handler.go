package misc

import (
	"fmt"
	"net/http"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Handler struct {
	phrasesManager *PhrasesManager
	versionInfo    string
}

func NewHandler(
	phrasesManager *PhrasesManager,
	versionInfo string,
) *Handler {
	return &Handler{
		phrasesManager: phrasesManager,
		versionInfo:    versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/phrase/random", handler.handleGetRandomPhrase).Methods("GET").Name("phrase")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, keep moving ;)")
}

// handleGetRandomPhrase serves ?kind=joke|motivation, motivation by default.
func (handler *Handler) handleGetRandomPhrase(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.phrase")
	defer span.End()

	kind := PhraseKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = KindMotivation
	}
	span.SetAttributes(attribute.String("phrase.kind", string(kind)))

	if kind != KindMotivation && kind != KindJoke {
		apperr.WriteError(w, apperr.Invalid("kind", "must be one of [%s, %s]", KindMotivation, KindJoke))
		return
	}

	p, err := handler.phrasesManager.Random(kind)
	if err != nil {
		log.Errorf("random phrase [%s]: %s", kind, err)
		apperr.WriteError(w, apperr.NotFound(fmt.Sprintf("%s phrase", kind)))
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, p)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
