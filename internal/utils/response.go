package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/K4ZED/NdangFit/internal/apperr"
	"github.com/K4ZED/NdangFit/internal/logger"
)

// JSON écrit le payload tel quel : le contrat d'API fixe la forme exacte
// de chaque réponse, pas d'enveloppe générique
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("could not encode response: %v", err)
	}
}

// Error mappe l'erreur applicative vers son status HTTP. La cause d'une
// erreur interne part dans les logs, jamais vers le client.
func Error(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		logger.Error("internal error: %v", err)
		if cause := errors.Unwrap(err); cause != nil {
			logger.Error("cause: %v", cause)
		}
	}
	JSON(w, status, map[string]string{"error": apperr.ClientMessage(err)})
}
