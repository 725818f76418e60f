package api

import (
	"database/sql"
	"sort"
	"time"

	"hotelio/internal/db"
)

// memStore backs the handler tests: an in-memory implementation of the
// service store interfaces with real overlap enforcement left to the service.
type memStore struct {
	chambres     map[int]db.Chambre
	clients      map[int]db.Client
	reservations map[int]db.Reservation
	nextID       int
}

func newMemStore() *memStore {
	return &memStore{
		chambres:     make(map[int]db.Chambre),
		clients:      make(map[int]db.Client),
		reservations: make(map[int]db.Reservation),
		nextID:       1,
	}
}

func (m *memStore) id() int {
	id := m.nextID
	m.nextID++
	return id
}

func (m *memStore) addChambre(numero int, chambreType string, prix int) db.Chambre {
	c := db.Chambre{ID: m.id(), Numero: numero, Type: chambreType, Prix: prix}
	m.chambres[c.ID] = c
	return c
}

func (m *memStore) addClient(nom, email string) db.Client {
	c := db.Client{ID: m.id(), Nom: nom, Email: email}
	m.clients[c.ID] = c
	return c
}

func (m *memStore) ListChambres() ([]db.Chambre, error) {
	var chambres []db.Chambre
	for _, c := range m.chambres {
		chambres = append(chambres, c)
	}
	sort.Slice(chambres, func(i, j int) bool { return chambres[i].ID < chambres[j].ID })
	return chambres, nil
}

func (m *memStore) GetChambre(id int) (*db.Chambre, error) {
	c, ok := m.chambres[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (m *memStore) CreateChambre(c *db.Chambre) error {
	c.ID = m.id()
	m.chambres[c.ID] = *c
	return nil
}

func (m *memStore) UpdateChambre(id int, numero *int, chambreType *string, prix *int) (*db.Chambre, error) {
	c, ok := m.chambres[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if numero != nil {
		c.Numero = *numero
	}
	if chambreType != nil {
		c.Type = *chambreType
	}
	if prix != nil {
		c.Prix = *prix
	}
	m.chambres[id] = c
	return &c, nil
}

func (m *memStore) DeleteChambre(id int) error {
	if _, ok := m.chambres[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.chambres, id)
	return nil
}

func (m *memStore) CountActiveReservations(chambreID int) (int, error) {
	count := 0
	now := time.Now()
	for _, r := range m.reservations {
		if r.ChambreID == chambreID && r.DateDepart.After(now) {
			count++
		}
	}
	return count, nil
}

func (m *memStore) CreateClient(c *db.Client) error {
	c.ID = m.id()
	m.clients[c.ID] = *c
	return nil
}

func (m *memStore) GetClient(id int) (*db.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (m *memStore) ListReservations() ([]db.Reservation, error) {
	var reservations []db.Reservation
	for _, r := range m.reservations {
		reservations = append(reservations, r)
	}
	sort.Slice(reservations, func(i, j int) bool { return reservations[i].ID < reservations[j].ID })
	return reservations, nil
}

func (m *memStore) ListReservationsForChambre(chambreID int) ([]db.Reservation, error) {
	var reservations []db.Reservation
	for _, r := range m.reservations {
		if r.ChambreID == chambreID {
			reservations = append(reservations, r)
		}
	}
	sort.Slice(reservations, func(i, j int) bool { return reservations[i].ID < reservations[j].ID })
	return reservations, nil
}

func (m *memStore) CreateReservation(res *db.Reservation) error {
	res.ID = m.id()
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	m.reservations[res.ID] = *res
	return nil
}

func (m *memStore) GetReservation(id int) (*db.Reservation, error) {
	r, ok := m.reservations[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &r, nil
}

func (m *memStore) DeleteReservation(id int) error {
	if _, ok := m.reservations[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.reservations, id)
	return nil
}
