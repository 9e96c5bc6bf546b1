package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

func WriteResponse(w http.ResponseWriter, contentType, message string, statusCode ...int) {
	WriteResponseBytes(w, contentType, []byte(message), statusCode...)
}

// WriteResponseBytes writes the message with an optional status code (200 when omitted)
func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode ...int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	if len(statusCode) > 0 {
		w.WriteHeader(statusCode[0])
	}

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponse(w, ContentType.Text, message, http.StatusOK)
}

// WriteJSONResponse marshals v and writes it with the given status code
func WriteJSONResponse(w http.ResponseWriter, statusCode int, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal json response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, respJson, statusCode)
}
