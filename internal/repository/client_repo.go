package repository

import (
	"database/sql"

	"hotelio/internal/db"
)

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(database *sql.DB) *ClientRepository {
	return &ClientRepository{DB: database}
}

func (r *ClientRepository) CreateClient(c *db.Client) error {
	query := `INSERT INTO client (nom, email, telephone) VALUES ($1, $2, NULLIF($3, '')) RETURNING id`
	return r.DB.QueryRow(query, c.Nom, c.Email, c.Telephone).Scan(&c.ID)
}

func (r *ClientRepository) GetClient(id int) (*db.Client, error) {
	var c db.Client
	var telephone sql.NullString
	query := `SELECT id, nom, email, telephone FROM client WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&c.ID, &c.Nom, &c.Email, &telephone)
	if err != nil {
		return nil, err
	}
	c.Telephone = telephone.String
	return &c, nil
}
