package handler

import (
	"net/http"

	"github.com/K4ZED/NdangFit/internal/utils"
)

// RootHandler liste les routes disponibles
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"name": "NdangFit API",
		"endpoints": []string{
			"POST /api/register",
			"POST /api/login",
			"GET  /api/workouts",
			"POST /api/workouts/log",
			"GET  /api/workouts/history/{user_id}",
			"POST /api/progress",
			"POST /api/bodystats/log",
			"GET  /api/bodystats/history/{user_id}",
			"POST /api/goals",
			"GET  /api/goals/{user_id}",
			"GET  /api/dashboard/{user_id}",
			"GET  /health",
		},
	})
}
