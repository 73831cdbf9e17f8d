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

type ItemHandler struct {
	Service *services.ItemService
}

func NewItemHandler(s *services.ItemService) *ItemHandler {
	return &ItemHandler{Service: s}
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}

	item, err := h.Service.CreateItem(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	item, err := h.Service.GetItem(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "NotFound", "Item not found")
		return
	}

	utils.JSON(w, http.StatusOK, item)
}

func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListItems(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, items)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}
	item.ID = id

	if err := h.Service.UpdateItem(r.Context(), &item); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteItem(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

func (h *ItemHandler) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}

	purchase, err := h.Service.RecordPurchase(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, purchase)
}

// ListPurchases returns purchase history, optionally filtered by
// ?item_id=.
func (h *ItemHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	itemID, _ := strconv.Atoi(r.URL.Query().Get("item_id"))

	purchases, err := h.Service.ListPurchases(r.Context(), itemID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, purchases)
}

func (h *ItemHandler) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeletePurchase(r.Context(), id); err != nil {
		utils.Error(w, http.StatusNotFound, "NotFound", "Purchase not found")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Purchase deleted"})
}
