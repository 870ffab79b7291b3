package handler

import (
	"net/http"

	"github.com/K4ZED/NdangFit/internal/utils"
)

type LogBodyStatRequest struct {
	UserID             int64    `json:"user_id"`
	Weight             *float64 `json:"weight"`
	BodyFatPercent     *float64 `json:"body_fat_percent"`
	MuscleMass         *float64 `json:"muscle_mass"`
	WaistCircumference *float64 `json:"waist_circumference"`
}

func (h *Handler) LogBodyStat(w http.ResponseWriter, r *http.Request) {
	var req LogBodyStatRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	statID, err := h.svc.LogBodyStat(r.Context(), req.UserID, req.Weight, req.BodyFatPercent, req.MuscleMass, req.WaistCircumference)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Body stat logged successfully!",
		"stat_id": statID,
	})
}

func (h *Handler) BodyStatHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.UserIDVar(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	history, err := h.svc.BodyStatHistory(r.Context(), userID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"stats_history": history})
}
