package repository

import (
	"database/sql"
	"fmt"

	"hotelio/internal/db"
)

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(database *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: database}
}

const reservationColumns = `id, date_arrivee, date_depart, statut, id_client, id_chambre, created_at, updated_at`

func scanReservation(row interface{ Scan(...interface{}) error }, res *db.Reservation) error {
	return row.Scan(
		&res.ID, &res.DateArrivee, &res.DateDepart, &res.Statut,
		&res.ClientID, &res.ChambreID, &res.CreatedAt, &res.UpdatedAt,
	)
}

func (r *ReservationRepository) ListReservations() ([]db.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservation ORDER BY id`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying reservations: %w", err)
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		var res db.Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservation rows: %w", err)
	}
	return reservations, nil
}

func (r *ReservationRepository) ListReservationsForChambre(chambreID int) ([]db.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservation WHERE id_chambre = $1 ORDER BY date_arrivee`

	rows, err := r.DB.Query(query, chambreID)
	if err != nil {
		return nil, fmt.Errorf("error querying reservations for chambre %d: %w", chambreID, err)
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		var res db.Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservation rows: %w", err)
	}
	return reservations, nil
}

func (r *ReservationRepository) CreateReservation(res *db.Reservation) error {
	query := `
		INSERT INTO reservation (date_arrivee, date_depart, statut, id_client, id_chambre)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		res.DateArrivee,
		res.DateDepart,
		res.Statut,
		res.ClientID,
		res.ChambreID,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
}

func (r *ReservationRepository) GetReservation(id int) (*db.Reservation, error) {
	var res db.Reservation
	query := `SELECT ` + reservationColumns + ` FROM reservation WHERE id = $1`
	err := scanReservation(r.DB.QueryRow(query, id), &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) DeleteReservation(id int) error {
	var deleted int
	query := `DELETE FROM reservation WHERE id = $1 RETURNING id`
	return r.DB.QueryRow(query, id).Scan(&deleted)
}
