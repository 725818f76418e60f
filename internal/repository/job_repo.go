package repository

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetConfirmedReservationIDsPastDepart returns IDs of confirmed reservations
// whose departure date has passed.
func (r *JobRepository) GetConfirmedReservationIDsPastDepart() ([]int, error) {
	query := `SELECT id FROM reservation WHERE statut = 'confirmed' AND date_depart <= CURRENT_DATE`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed reservations past departure: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning reservation ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// UpdateReservationStatuses sets the given statut on a list of reservations
// and refreshes updated_at.
func (r *JobRepository) UpdateReservationStatuses(ids []int, newStatut string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE reservation SET statut = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.Exec(query, newStatut, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating reservation statuses: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Updated statut for %d reservations to '%s'", rowsAffected, newStatut)
	}
	return nil
}
