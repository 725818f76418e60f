package repository

import (
	"database/sql"
	"fmt"

	"hotelio/internal/db"
)

type ChambreRepository struct {
	DB *sql.DB
}

func NewChambreRepository(database *sql.DB) *ChambreRepository {
	return &ChambreRepository{DB: database}
}

func (r *ChambreRepository) ListChambres() ([]db.Chambre, error) {
	query := `SELECT id, numero, type, prix FROM chambre ORDER BY id`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying chambres: %w", err)
	}
	defer rows.Close()

	var chambres []db.Chambre
	for rows.Next() {
		var c db.Chambre
		if err := rows.Scan(&c.ID, &c.Numero, &c.Type, &c.Prix); err != nil {
			return nil, fmt.Errorf("error scanning chambre: %w", err)
		}
		chambres = append(chambres, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating chambre rows: %w", err)
	}
	return chambres, nil
}

func (r *ChambreRepository) GetChambre(id int) (*db.Chambre, error) {
	var c db.Chambre
	query := `SELECT id, numero, type, prix FROM chambre WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&c.ID, &c.Numero, &c.Type, &c.Prix)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChambreRepository) CreateChambre(c *db.Chambre) error {
	query := `INSERT INTO chambre (numero, type, prix) VALUES ($1, $2, $3) RETURNING id`
	return r.DB.QueryRow(query, c.Numero, c.Type, c.Prix).Scan(&c.ID)
}

// UpdateChambre applies a partial update; nil fields keep their current value.
func (r *ChambreRepository) UpdateChambre(id int, numero *int, chambreType *string, prix *int) (*db.Chambre, error) {
	var c db.Chambre
	query := `
		UPDATE chambre
		SET numero = COALESCE($2, numero),
		    type   = COALESCE($3, type),
		    prix   = COALESCE($4, prix)
		WHERE id = $1
		RETURNING id, numero, type, prix`
	err := r.DB.QueryRow(query, id, numero, chambreType, prix).Scan(&c.ID, &c.Numero, &c.Type, &c.Prix)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChambreRepository) DeleteChambre(id int) error {
	var deleted int
	query := `DELETE FROM chambre WHERE id = $1 RETURNING id`
	return r.DB.QueryRow(query, id).Scan(&deleted)
}

// CountActiveReservations counts reservations for the chambre whose stay has
// not ended yet. The departure day itself does not count as occupied.
func (r *ChambreRepository) CountActiveReservations(chambreID int) (int, error) {
	var count int
	query := `SELECT COUNT(id) FROM reservation WHERE id_chambre = $1 AND date_depart > CURRENT_DATE`
	err := r.DB.QueryRow(query, chambreID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active reservations for chambre %d: %w", chambreID, err)
	}
	return count, nil
}
