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

type ClientHandler struct {
	Service *services.ClientService
}

func NewClientHandler(s *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: s}
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}

	client, err := h.Service.CreateClient(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	client, err := h.Service.GetClient(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "NotFound", "Client not found")
		return
	}

	utils.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Service.ListClients(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		utils.Error(w, http.StatusBadRequest, "BadRequest", "Invalid request body")
		return
	}
	client.ID = id

	if err := h.Service.UpdateClient(r.Context(), &client); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteClient(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Client deleted"})
}
