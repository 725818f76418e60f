package service

import (
	"fmt"

	"hotelio/internal/db"
	apperr "hotelio/internal/errors"
	"hotelio/internal/repository"
)

type ClientService struct {
	Clients ClientStore
}

func NewClientService(clients ClientStore) *ClientService {
	return &ClientService{Clients: clients}
}

func (s *ClientService) CreateClient(nom, email, telephone string) (*db.Client, error) {
	client := &db.Client{Nom: nom, Email: email, Telephone: telephone}
	if err := s.Clients.CreateClient(client); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.ErrConflict("Cet email est déjà utilisé.")
		}
		return nil, fmt.Errorf("error creating client: %w", err)
	}
	return client, nil
}
