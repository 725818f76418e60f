package api

import "hotelio/internal/db"

const dateLayout = "2006-01-02"

// Chambre
type CreateChambreRequest struct {
	Numero *int   `json:"numero"`
	Type   string `json:"type"`
	Prix   *int   `json:"prix"`
}
type UpdateChambreRequest struct {
	Numero *int    `json:"numero"`
	Type   *string `json:"type"`
	Prix   *int    `json:"prix"`
}
type ChambreResponse struct {
	ID     int    `json:"id"`
	Numero int    `json:"numero"`
	Type   string `json:"type"`
	Prix   int    `json:"prix"`
}

// Client
type CreateClientRequest struct {
	Nom       string `json:"nom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}
type ClientResponse struct {
	ID        int    `json:"id"`
	Nom       string `json:"nom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
}

// Reservation
type CreateReservationRequest struct {
	ClientID    *int   `json:"id_client"`
	ChambreID   *int   `json:"id_chambre"`
	DateArrivee string `json:"date_arrivee"`
	DateDepart  string `json:"date_depart"`
}
type ReservationResponse struct {
	ID          int    `json:"id"`
	DateArrivee string `json:"date_arrivee"`
	DateDepart  string `json:"date_depart"`
	Statut      string `json:"statut"`
	ClientID    int    `json:"id_client"`
	ChambreID   int    `json:"id_chambre"`
}

func toChambreResponse(c db.Chambre) ChambreResponse {
	return ChambreResponse{ID: c.ID, Numero: c.Numero, Type: c.Type, Prix: c.Prix}
}

func toReservationResponse(r db.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		DateArrivee: r.DateArrivee.Format(dateLayout),
		DateDepart:  r.DateDepart.Format(dateLayout),
		Statut:      r.Statut,
		ClientID:    r.ClientID,
		ChambreID:   r.ChambreID,
	}
}
