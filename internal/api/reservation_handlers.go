package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"hotelio/internal/service"
)

type ReservationHandler struct {
	Service *service.ReservationService
}

func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// FindAvailableChambres serves GET /api/chambres/disponibles.
func (h *ReservationHandler) FindAvailableChambres(w http.ResponseWriter, r *http.Request) {
	dateArrivee := r.URL.Query().Get("date_arrivee")
	dateDepart := r.URL.Query().Get("date_depart")

	if dateArrivee == "" || dateDepart == "" {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Les dates de début et de fin sont requises."})
		return
	}

	arrivee, errArrivee := parseDate(dateArrivee)
	depart, errDepart := parseDate(dateDepart)
	if errArrivee != nil || errDepart != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Format de date invalide. Utilisez YYYY-MM-DD."})
		return
	}

	chambres, err := h.Service.FindAvailableRooms(arrivee, depart)
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

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Requête invalide."})
		return
	}
	if req.ClientID == nil || req.ChambreID == nil || req.DateArrivee == "" || req.DateDepart == "" {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Le client, la chambre et les dates sont requis."})
		return
	}

	arrivee, errArrivee := parseDate(req.DateArrivee)
	depart, errDepart := parseDate(req.DateDepart)
	if errArrivee != nil || errDepart != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Format de date invalide. Utilisez YYYY-MM-DD."})
		return
	}

	reservation, err := h.Service.CreateReservation(*req.ClientID, *req.ChambreID, arrivee, depart)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toReservationResponse(*reservation))
}

func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Identifiant invalide."})
		return
	}

	reservation, err := h.Service.GetReservation(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toReservationResponse(*reservation))
}

func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: "Identifiant invalide."})
		return
	}

	if err := h.Service.CancelReservation(id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Réservation annulée.")
}
