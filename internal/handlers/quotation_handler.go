package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"billsoft-backend/internal/models"
	"billsoft-backend/internal/services"
	"billsoft-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type QuotationHandler struct {
	Service *services.QuotationService
	PDF     *services.PDFService
}

func NewQuotationHandler(s *services.QuotationService, pdf *services.PDFService) *QuotationHandler {
	return &QuotationHandler{Service: s, PDF: pdf}
}

func (h *QuotationHandler) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}

	q, err := h.Service.CreateQuotation(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, q)
}

func (h *QuotationHandler) GetQuotation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	q, err := h.Service.GetQuotation(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "NotFound", "Quotation not found")
		return
	}

	utils.JSON(w, http.StatusOK, q)
}

func (h *QuotationHandler) ListQuotations(w http.ResponseWriter, r *http.Request) {
	quotations, err := h.Service.ListQuotations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, quotations)
}

func (h *QuotationHandler) UpdateQuotation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}
	req.ID = id

	q, err := h.Service.UpdateQuotation(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, q)
}

func (h *QuotationHandler) DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	q, err := h.Service.GetQuotation(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "NotFound", "Quotation not found")
		return
	}

	if err := h.Service.DeleteQuotation(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	h.PDF.RemoveQuotationArchive(q.DocumentNumber)
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Quotation deleted"})
}

func (h *QuotationHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	q, err := h.Service.GetQuotation(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "NotFound", "Quotation not found")
		return
	}

	data, err := h.PDF.GenerateQuotationPDF(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := strings.ReplaceAll(q.DocumentNumber, "/", "-")
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", filename))
	w.Write(data)
}
