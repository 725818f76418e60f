package entities

type ReservationEmailData struct {
	ClientNom        string
	ReservationID    int
	ChambreNumero    int
	ChambreType      string
	ArriveeFormatted string
	DepartFormatted  string
	Statut           string
	CurrentYear      int
}
