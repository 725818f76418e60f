package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"hotelio/internal/booking"
	"hotelio/internal/db"
	apperr "hotelio/internal/errors"
	"hotelio/internal/repository"
)

// Persisted statut labels. Notifications use their French display forms.
const (
	statutConfirmed = "confirmed"
	statutFinished  = "finished"
)

type ReservationService struct {
	Reservations ReservationStore
	Chambres     ChambreStore
	Clients      ClientStore
	Sender       Notifier
}

func NewReservationService(reservations ReservationStore, chambres ChambreStore, clients ClientStore, sender Notifier) *ReservationService {
	return &ReservationService{
		Reservations: reservations,
		Chambres:     chambres,
		Clients:      clients,
		Sender:       sender,
	}
}

// FindAvailableRooms returns every chambre without a reservation overlapping
// [arrivee, depart).
func (s *ReservationService) FindAvailableRooms(arrivee, depart time.Time) ([]db.Chambre, error) {
	if err := booking.ValidateRange(arrivee, depart); err != nil {
		return nil, apperr.ErrValidation("La date de départ doit être postérieure à la date d'arrivée.")
	}

	chambres, err := s.Chambres.ListChambres()
	if err != nil {
		return nil, fmt.Errorf("error loading chambres: %w", err)
	}
	reservations, err := s.Reservations.ListReservations()
	if err != nil {
		return nil, fmt.Errorf("error loading reservations: %w", err)
	}

	return booking.FindAvailableRooms(arrivee, depart, chambres, reservations), nil
}

// CreateReservation persists a reservation for the client and chambre after
// the overlap gate. The statut of a new reservation is always "confirmed".
func (s *ReservationService) CreateReservation(clientID, chambreID int, arrivee, depart time.Time) (*db.Reservation, error) {
	if err := booking.ValidateRange(arrivee, depart); err != nil {
		return nil, apperr.ErrValidation("La date de départ doit être postérieure à la date d'arrivée.")
	}

	chambre, err := s.Chambres.GetChambre(chambreID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound("Chambre introuvable.")
		}
		return nil, fmt.Errorf("error loading chambre %d: %w", chambreID, err)
	}

	client, err := s.Clients.GetClient(clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound("Client introuvable.")
		}
		return nil, fmt.Errorf("error loading client %d: %w", clientID, err)
	}

	existing, err := s.Reservations.ListReservationsForChambre(chambreID)
	if err != nil {
		return nil, fmt.Errorf("error loading reservations for chambre %d: %w", chambreID, err)
	}
	if booking.HasConflict(chambreID, arrivee, depart, existing) {
		return nil, apperr.ErrConflict("La chambre est déjà réservée pour ces dates.")
	}

	reservation := &db.Reservation{
		DateArrivee: arrivee,
		DateDepart:  depart,
		Statut:      statutConfirmed,
		ClientID:    clientID,
		ChambreID:   chambreID,
	}

	if err := s.Reservations.CreateReservation(reservation); err != nil {
		// The EXCLUDE constraint catches a concurrent conflicting insert
		// that slipped past the in-process check.
		if repository.IsExclusionViolation(err) {
			return nil, apperr.ErrConflict("La chambre est déjà réservée pour ces dates.")
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.ErrNotFound("Chambre ou client introuvable.")
		}
		log.Printf("Error creating reservation in repository: %v", err)
		return nil, err
	}

	if s.Sender != nil {
		s.Sender.NotifyReservation(*client, *chambre, *reservation, "confirmée")
	}
	return reservation, nil
}

func (s *ReservationService) GetReservation(id int) (*db.Reservation, error) {
	reservation, err := s.Reservations.GetReservation(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound("Réservation introuvable.")
		}
		return nil, fmt.Errorf("error loading reservation %d: %w", id, err)
	}
	return reservation, nil
}

// CancelReservation deletes the reservation. No state history is kept.
func (s *ReservationService) CancelReservation(id int) error {
	reservation, err := s.Reservations.GetReservation(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrNotFound("Réservation introuvable.")
		}
		return fmt.Errorf("error loading reservation %d: %w", id, err)
	}

	if err := s.Reservations.DeleteReservation(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrNotFound("Réservation introuvable.")
		}
		return fmt.Errorf("error deleting reservation %d: %w", id, err)
	}

	if s.Sender != nil {
		client, errClient := s.Clients.GetClient(reservation.ClientID)
		chambre, errChambre := s.Chambres.GetChambre(reservation.ChambreID)
		if errClient != nil || errChambre != nil {
			log.Printf("Reservation %d cancelled, but notification data could not be loaded (client: %v, chambre: %v)", id, errClient, errChambre)
			return nil
		}
		s.Sender.NotifyReservation(*client, *chambre, *reservation, "annulée")
	}
	return nil
}
