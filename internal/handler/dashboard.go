package handler

import (
	"net/http"

	"github.com/K4ZED/NdangFit/internal/utils"
)

// GetDashboard : la seule lecture composite du service, quatre requêtes
// indépendantes assemblées en un seul payload
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.UserIDVar(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	summary, err := h.svc.Dashboard(r.Context(), userID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, summary)
}
