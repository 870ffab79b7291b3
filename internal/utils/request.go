package utils

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/K4ZED/NdangFit/internal/apperr"
)

func DecodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return apperr.Validation("invalid JSON body")
	}
	return nil
}

// UserIDVar lit le paramètre de route {user_id}
func UserIDVar(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["user_id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("user_id must be a positive integer")
	}
	return id, nil
}
