package handler

import (
	"net/http"

	"github.com/K4ZED/NdangFit/internal/service"
	"github.com/K4ZED/NdangFit/internal/utils"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
