package api

import (
	"encoding/json"
	"net/http"

	"hotelio/internal/service"
)

type ClientHandler struct {
	Service *service.ClientService
}

func NewClientHandler(svc *service.ClientService) *ClientHandler {
	return &ClientHandler{Service: svc}
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Requête invalide."})
		return
	}
	if req.Nom == "" || req.Email == "" {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Le nom et l'email sont requis."})
		return
	}

	client, err := h.Service.CreateClient(req.Nom, req.Email, req.Telephone)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, ClientResponse{
		ID:        client.ID,
		Nom:       client.Nom,
		Email:     client.Email,
		Telephone: client.Telephone,
	})
}
