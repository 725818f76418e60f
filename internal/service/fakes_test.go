package service

import (
	"database/sql"
	"sort"
	"time"

	"hotelio/internal/db"
)

// fakeStore is an in-memory implementation of the store interfaces used to
// exercise the services without a database.
type fakeStore struct {
	chambres     map[int]db.Chambre
	clients      map[int]db.Client
	reservations map[int]db.Reservation
	nextID       int

	createReservationErr error
	createChambreErr     error
	createClientErr      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		chambres:     make(map[int]db.Chambre),
		clients:      make(map[int]db.Client),
		reservations: make(map[int]db.Reservation),
		nextID:       1,
	}
}

func (f *fakeStore) id() int {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) addChambre(numero int) db.Chambre {
	c := db.Chambre{ID: f.id(), Numero: numero, Type: "simple", Prix: 100}
	f.chambres[c.ID] = c
	return c
}

func (f *fakeStore) addClient(nom, email, telephone string) db.Client {
	c := db.Client{ID: f.id(), Nom: nom, Email: email, Telephone: telephone}
	f.clients[c.ID] = c
	return c
}

func (f *fakeStore) ListChambres() ([]db.Chambre, error) {
	var chambres []db.Chambre
	for _, c := range f.chambres {
		chambres = append(chambres, c)
	}
	sort.Slice(chambres, func(i, j int) bool { return chambres[i].ID < chambres[j].ID })
	return chambres, nil
}

func (f *fakeStore) GetChambre(id int) (*db.Chambre, error) {
	c, ok := f.chambres[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (f *fakeStore) CreateChambre(c *db.Chambre) error {
	if f.createChambreErr != nil {
		return f.createChambreErr
	}
	c.ID = f.id()
	f.chambres[c.ID] = *c
	return nil
}

func (f *fakeStore) UpdateChambre(id int, numero *int, chambreType *string, prix *int) (*db.Chambre, error) {
	c, ok := f.chambres[id]
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
	f.chambres[id] = c
	return &c, nil
}

func (f *fakeStore) DeleteChambre(id int) error {
	if _, ok := f.chambres[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.chambres, id)
	return nil
}

func (f *fakeStore) CountActiveReservations(chambreID int) (int, error) {
	count := 0
	now := time.Now()
	for _, r := range f.reservations {
		if r.ChambreID == chambreID && r.DateDepart.After(now) {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) CreateClient(c *db.Client) error {
	if f.createClientErr != nil {
		return f.createClientErr
	}
	c.ID = f.id()
	f.clients[c.ID] = *c
	return nil
}

func (f *fakeStore) GetClient(id int) (*db.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (f *fakeStore) ListReservations() ([]db.Reservation, error) {
	var reservations []db.Reservation
	for _, r := range f.reservations {
		reservations = append(reservations, r)
	}
	sort.Slice(reservations, func(i, j int) bool { return reservations[i].ID < reservations[j].ID })
	return reservations, nil
}

func (f *fakeStore) ListReservationsForChambre(chambreID int) ([]db.Reservation, error) {
	var reservations []db.Reservation
	for _, r := range f.reservations {
		if r.ChambreID == chambreID {
			reservations = append(reservations, r)
		}
	}
	sort.Slice(reservations, func(i, j int) bool { return reservations[i].ID < reservations[j].ID })
	return reservations, nil
}

func (f *fakeStore) CreateReservation(res *db.Reservation) error {
	if f.createReservationErr != nil {
		return f.createReservationErr
	}
	res.ID = f.id()
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	f.reservations[res.ID] = *res
	return nil
}

func (f *fakeStore) GetReservation(id int) (*db.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &r, nil
}

func (f *fakeStore) DeleteReservation(id int) error {
	if _, ok := f.reservations[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.reservations, id)
	return nil
}

// fakeNotifier records notifications instead of sending them.
type fakeNotifier struct {
	statuts []string
}

func (f *fakeNotifier) NotifyReservation(client db.Client, chambre db.Chambre, res db.Reservation, statut string) {
	f.statuts = append(f.statuts, statut)
}
