package db

import "time"

type Client struct {
	ID        int
	Nom       string
	Email     string
	Telephone string
}

type Chambre struct {
	ID     int
	Numero int
	Type   string
	Prix   int
}

type Reservation struct {
	ID          int
	DateArrivee time.Time
	DateDepart  time.Time
	Statut      string
	ClientID    int
	ChambreID   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
