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

type InvoiceHandler struct {
	Service *services.InvoiceService
	PDF     *services.PDFService
}

func NewInvoiceHandler(s *services.InvoiceService, pdf *services.PDFService) *InvoiceHandler {
	return &InvoiceHandler{Service: s, PDF: pdf}
}

func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}

	inv, err := h.Service.CreateInvoice(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, inv)
}

func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	inv, err := h.Service.GetInvoice(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "NotFound", "Invoice not found")
		return
	}

	utils.JSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Service.ListInvoices(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}
	req.ID = id

	inv, err := h.Service.UpdateInvoice(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	inv, err := h.Service.GetInvoice(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "NotFound", "Invoice not found")
		return
	}

	if err := h.Service.DeleteInvoice(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	h.PDF.RemoveInvoiceArchive(inv.DocumentNumber)
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Invoice deleted"})
}

// DownloadPDF streams the rendered invoice.
func (h *InvoiceHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	inv, err := h.Service.GetInvoice(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "NotFound", "Invoice not found")
		return
	}

	data, err := h.PDF.GenerateInvoicePDF(r.Context(), inv)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := strings.ReplaceAll(inv.DocumentNumber, "/", "-")
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", filename))
	w.Write(data)
}
