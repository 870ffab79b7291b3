package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID attache un identifiant unique à chaque requête, réutilisé tel
// quel s'il est déjà fourni par un proxy amont
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)

		next.ServeHTTP(w, r)
	})
}
