// Package booking holds the availability engine. It works on snapshots of
// rooms and reservations and performs no I/O, so it can be exercised without
// a database.
package booking

import (
	"fmt"
	"time"

	"hotelio/internal/db"
)

// Overlaps reports whether [a1, d1) and [a2, d2) share at least one night.
// Ranges are half-open: the departure day itself is not occupied, so a stay
// ending on the day another one starts does not overlap it.
func Overlaps(a1, d1, a2, d2 time.Time) bool {
	return a1.Before(d2) && a2.Before(d1)
}

// ValidateRange checks that arrival is strictly before departure.
func ValidateRange(arrivee, depart time.Time) error {
	if !arrivee.Before(depart) {
		return fmt.Errorf("date_depart must be after date_arrivee")
	}
	return nil
}

// HasConflict reports whether any reservation for the given room overlaps
// the requested [arrivee, depart) range.
func HasConflict(chambreID int, arrivee, depart time.Time, reservations []db.Reservation) bool {
	for _, r := range reservations {
		if r.ChambreID != chambreID {
			continue
		}
		if Overlaps(arrivee, depart, r.DateArrivee, r.DateDepart) {
			return true
		}
	}
	return false
}

// FindAvailableRooms returns every room without a reservation overlapping
// [arrivee, depart), preserving the relative order of chambres.
func FindAvailableRooms(arrivee, depart time.Time, chambres []db.Chambre, reservations []db.Reservation) []db.Chambre {
	occupied := make(map[int]bool)
	for _, r := range reservations {
		if Overlaps(arrivee, depart, r.DateArrivee, r.DateDepart) {
			occupied[r.ChambreID] = true
		}
	}

	disponibles := make([]db.Chambre, 0, len(chambres))
	for _, c := range chambres {
		if !occupied[c.ID] {
			disponibles = append(disponibles, c)
		}
	}
	return disponibles
}
