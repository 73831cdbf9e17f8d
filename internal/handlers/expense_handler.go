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

type ExpenseHandler struct {
	Service *services.ExpenseService
}

func NewExpenseHandler(s *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Service: s}
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}

	expense, err := h.Service.CreateExpense(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	expense, err := h.Service.GetExpense(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "NotFound", "Expense not found")
		return
	}

	utils.JSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Service.ListExpenses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}
	req.ID = id

	expense, err := h.Service.UpdateExpense(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteExpense(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Expense deleted"})
}
