package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"billsoft-backend/internal/models"
	"billsoft-backend/internal/services"
	"billsoft-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(s *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}

	payment, err := h.Service.RecordPayment(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	payment, err := h.Service.GetPayment(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "NotFound", "Payment not found")
		return
	}

	utils.JSON(w, http.StatusOK, payment)
}

// ListPayments returns every payment, or just one invoice's with
// ?invoice_id=.
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	invoiceID, _ := strconv.Atoi(r.URL.Query().Get("invoice_id"))

	var (
		payments []*models.Payment
		err      error
	)
	if invoiceID > 0 {
		payments, err = h.Service.ListInvoicePayments(r.Context(), invoiceID)
	} else {
		payments, err = h.Service.ListPayments(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}
	req.ID = id

	payment, err := h.Service.UpdatePayment(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeletePayment(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Payment deleted"})
}
