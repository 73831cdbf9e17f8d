package handlers

import (
	"encoding/json"
	"net/http"

	"billsoft-backend/internal/models"
	"billsoft-backend/internal/services"
	"billsoft-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type SettingHandler struct {
	Service *services.SettingService
}

func NewSettingHandler(s *services.SettingService) *SettingHandler {
	return &SettingHandler{Service: s}
}

func (h *SettingHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.GetSettings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, settings)
}

func (h *SettingHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}

	settings, err := h.Service.UpdateSettings(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, settings)
}

// PeekSequence reports the counter value the next document of the given
// kind will use. Reading it never advances anything.
func (h *SettingHandler) PeekSequence(w http.ResponseWriter, r *http.Request) {
	kind := models.SequenceKind(mux.Vars(r)["kind"])
	switch kind {
	case models.SequenceInvoice, models.SequenceQuotation, models.SequenceExpense:
	default:
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Unknown sequence kind")
		return
	}

	seq, err := h.Service.PeekSequence(r.Context(), kind)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"kind":     kind,
		"sequence": seq,
	})
}
