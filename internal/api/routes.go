package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/K4ZED/NdangFit/internal/handler"
	"github.com/K4ZED/NdangFit/internal/logger"
	"github.com/K4ZED/NdangFit/internal/middleware"
	"github.com/K4ZED/NdangFit/internal/utils"
)

func SetupRouter(h *handler.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	// Root - API documentation
	r.HandleFunc("/", h.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/api/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/login", h.Login).Methods(http.MethodPost)

	// Workouts
	r.HandleFunc("/api/workouts", h.GetExercises).Methods(http.MethodGet)
	r.HandleFunc("/api/workouts/log", h.LogWorkout).Methods(http.MethodPost)
	r.HandleFunc("/api/workouts/history/{user_id}", h.WorkoutHistory).Methods(http.MethodGet)
	r.HandleFunc("/api/progress", h.Progress).Methods(http.MethodPost)

	// Body stats
	r.HandleFunc("/api/bodystats/log", h.LogBodyStat).Methods(http.MethodPost)
	r.HandleFunc("/api/bodystats/history/{user_id}", h.BodyStatHistory).Methods(http.MethodGet)

	// Goals
	r.HandleFunc("/api/goals", h.CreateGoal).Methods(http.MethodPost)
	r.HandleFunc("/api/goals/{user_id}", h.Goals).Methods(http.MethodGet)

	// Dashboard
	r.HandleFunc("/api/dashboard/{user_id}", h.GetDashboard).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("404 Not Found: %s %s", r.Method, r.URL.Path)
		utils.JSON(w, http.StatusNotFound, map[string]string{"error": "Route not found"})
	})

	return r
}
