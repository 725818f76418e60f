package service

import "hotelio/internal/db"

// Data-access interfaces consumed by the services. The repository package
// provides the Postgres implementations; tests inject in-memory fakes.

type ChambreStore interface {
	ListChambres() ([]db.Chambre, error)
	GetChambre(id int) (*db.Chambre, error)
	CreateChambre(c *db.Chambre) error
	UpdateChambre(id int, numero *int, chambreType *string, prix *int) (*db.Chambre, error)
	DeleteChambre(id int) error
	CountActiveReservations(chambreID int) (int, error)
}

type ClientStore interface {
	CreateClient(c *db.Client) error
	GetClient(id int) (*db.Client, error)
}

type ReservationStore interface {
	ListReservations() ([]db.Reservation, error)
	ListReservationsForChambre(chambreID int) ([]db.Reservation, error)
	CreateReservation(res *db.Reservation) error
	GetReservation(id int) (*db.Reservation, error)
	DeleteReservation(id int) error
}

// Notifier delivers reservation lifecycle notifications to the client.
type Notifier interface {
	NotifyReservation(client db.Client, chambre db.Chambre, res db.Reservation, statut string)
}
