package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"hotelio/internal/service"
)

type ChambreHandler struct {
	Service *service.ChambreService
}

func NewChambreHandler(svc *service.ChambreService) *ChambreHandler {
	return &ChambreHandler{Service: svc}
}

func (h *ChambreHandler) ListChambres(w http.ResponseWriter, r *http.Request) {
	chambres, err := h.Service.ListChambres()
	if err != nil {
		respondError(w, err)
		return
	}
	response := make([]ChambreResponse, 0, len(chambres))
	for _, c := range chambres {
		response = append(response, toChambreResponse(c))
	}
	respondJSON(w, http.StatusOK, response)
}

func (h *ChambreHandler) CreateChambre(w http.ResponseWriter, r *http.Request) {
	var req CreateChambreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Requête invalide."})
		return
	}
	if req.Numero == nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Le numéro de chambre est requis."})
		return
	}

	prix := 0
	if req.Prix != nil {
		prix = *req.Prix
	}
	chambre, err := h.Service.CreateChambre(*req.Numero, req.Type, prix)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toChambreResponse(*chambre))
}

func (h *ChambreHandler) UpdateChambre(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Identifiant invalide."})
		return
	}

	var req UpdateChambreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Requête invalide."})
		return
	}

	chambre, err := h.Service.UpdateChambre(id, req.Numero, req.Type, req.Prix)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toChambreResponse(*chambre))
}

func (h *ChambreHandler) DeleteChambre(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Identifiant invalide."})
		return
	}

	if err := h.Service.DeleteChambre(id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Chambre supprimée.")
}
