package handler

import (
	"net/http"

	"github.com/K4ZED/NdangFit/internal/utils"
)

type CreateGoalRequest struct {
	UserID      int64   `json:"user_id"`
	GoalType    string  `json:"goal_type"`
	TargetValue float64 `json:"target_value"`
	Deadline    *string `json:"deadline"`
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req CreateGoalRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	goalID, err := h.svc.CreateGoal(r.Context(), req.UserID, req.GoalType, req.TargetValue, req.Deadline)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Goal created successfully!",
		"goal_id": goalID,
	})
}

func (h *Handler) Goals(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.UserIDVar(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	goals, err := h.svc.Goals(r.Context(), userID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"goals": goals})
}
