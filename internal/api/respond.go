package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	apperr "hotelio/internal/errors"
)

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageResponse{Success: true, Message: message})
}

// respondError maps service errors onto the HTTP taxonomy. Anything that is
// not an HTTPError is logged and reported as a 500.
func respondError(w http.ResponseWriter, err error) {
	var httpErr *apperr.HTTPError
	if errors.As(err, &httpErr) {
		respondJSON(w, httpErr.Code, messageResponse{Success: false, Message: httpErr.Message})
		return
	}
	log.Printf("Internal error: %v", err)
	respondJSON(w, http.StatusInternalServerError, messageResponse{Success: false, Message: "Erreur interne du serveur."})
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
