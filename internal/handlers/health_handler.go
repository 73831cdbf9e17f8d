package handlers

import (
	"net/http"

	"billsoft-backend/internal/health"
	"billsoft-backend/pkg/utils"
)

type HealthHandler struct {
	Checker *health.HealthChecker
}

func NewHealthHandler(checker *health.HealthChecker) *HealthHandler {
	return &HealthHandler{Checker: checker}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.CheckBasic()

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	utils.JSON(w, code, status)
}

// Ready reports whether the service can take traffic. Only the database
// gates readiness; a degraded cache does not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.CheckBasic()

	if status.Status != "healthy" {
		utils.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
