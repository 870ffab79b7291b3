package handler

import (
	"net/http"

	"github.com/K4ZED/NdangFit/internal/utils"
)

type LogWorkoutRequest struct {
	UserID       int64    `json:"user_id"`
	ExerciseName string   `json:"exercise_name"`
	Sets         int      `json:"sets"`
	Reps         int      `json:"reps"`
	Weight       *float64 `json:"weight"`
}

type ProgressRequest struct {
	UserID       int64  `json:"user_id"`
	ExerciseName string `json:"exercise_name"`
}

// GetExercises liste la bibliothèque, en la semant au premier appel
func (h *Handler) GetExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.svc.ListExercises(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"exercises": exercises})
}

func (h *Handler) LogWorkout(w http.ResponseWriter, r *http.Request) {
	var req LogWorkoutRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	workoutID, err := h.svc.LogWorkout(r.Context(), req.UserID, req.ExerciseName, req.Sets, req.Reps, req.Weight)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Workout logged successfully!",
		"workout_id": workoutID,
	})
}

func (h *Handler) WorkoutHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.UserIDVar(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	history, err := h.svc.WorkoutHistory(r.Context(), userID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"history": history})
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	progress, err := h.svc.Progress(r.Context(), req.UserID, req.ExerciseName)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"progress": progress})
}
