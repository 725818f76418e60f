package service

import (
	"database/sql"
	"errors"
	"fmt"

	"hotelio/internal/db"
	apperr "hotelio/internal/errors"
	"hotelio/internal/repository"
)

type ChambreService struct {
	Chambres ChambreStore
}

func NewChambreService(chambres ChambreStore) *ChambreService {
	return &ChambreService{Chambres: chambres}
}

func (s *ChambreService) ListChambres() ([]db.Chambre, error) {
	return s.Chambres.ListChambres()
}

func (s *ChambreService) CreateChambre(numero int, chambreType string, prix int) (*db.Chambre, error) {
	if prix < 0 {
		return nil, apperr.ErrValidation("Le prix doit être positif ou nul.")
	}

	chambre := &db.Chambre{Numero: numero, Type: chambreType, Prix: prix}
	if err := s.Chambres.CreateChambre(chambre); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.ErrConflict("Le numéro de chambre existe déjà.")
		}
		return nil, fmt.Errorf("error creating chambre: %w", err)
	}
	return chambre, nil
}

// UpdateChambre changes only the supplied fields; nil means keep the current
// value.
func (s *ChambreService) UpdateChambre(id int, numero *int, chambreType *string, prix *int) (*db.Chambre, error) {
	if prix != nil && *prix < 0 {
		return nil, apperr.ErrValidation("Le prix doit être positif ou nul.")
	}

	chambre, err := s.Chambres.UpdateChambre(id, numero, chambreType, prix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound("Chambre introuvable.")
		}
		if repository.IsUniqueViolation(err) {
			return nil, apperr.ErrConflict("Le numéro de chambre existe déjà.")
		}
		return nil, fmt.Errorf("error updating chambre %d: %w", id, err)
	}
	return chambre, nil
}

// DeleteChambre rejects deletion while reservations still reference the
// chambre (restrict policy), then deletes.
func (s *ChambreService) DeleteChambre(id int) error {
	active, err := s.Chambres.CountActiveReservations(id)
	if err != nil {
		return fmt.Errorf("error checking reservations for chambre %d: %w", id, err)
	}
	if active > 0 {
		return apperr.ErrConflict("La chambre a des réservations actives et ne peut pas être supprimée.")
	}

	if err := s.Chambres.DeleteChambre(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrNotFound("Chambre introuvable.")
		}
		if repository.IsForeignKeyViolation(err) {
			return apperr.ErrConflict("La chambre a des réservations et ne peut pas être supprimée.")
		}
		return fmt.Errorf("error deleting chambre %d: %w", id, err)
	}
	return nil
}
