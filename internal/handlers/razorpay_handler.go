package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"billsoft-backend/internal/services"
	"billsoft-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type RazorpayHandler struct {
	Service *services.RazorpayService
}

func NewRazorpayHandler(s *services.RazorpayService) *RazorpayHandler {
	return &RazorpayHandler{Service: s}
}

// CreatePaymentLink opens a Razorpay order for an invoice. The optional
// amount query parameter collects a partial payment; empty means the
// full pending balance.
func (h *RazorpayHandler) CreatePaymentLink(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Service.CreateOrder(r.Context(), id, r.URL.Query().Get("amount"))
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, order)
}

// Webhook receives Razorpay event callbacks. The signature is checked
// against the raw body before any JSON parsing.
func (h *RazorpayHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Unreadable body")
		return
	}

	signature := r.Header.Get("X-Razorpay-Signature")
	if !h.Service.VerifyWebhookSignature(body, signature) {
		utils.Error(w, http.StatusUnauthorized, "InvalidSignature", "Webhook signature mismatch")
		return
	}

	var event struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(body, &event); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid webhook payload")
		return
	}

	if err := h.Service.ProcessWebhook(r.Context(), event.Event, event.Payload); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
