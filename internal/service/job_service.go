package service

import (
	"fmt"
	"log"

	"hotelio/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// UpdateFinishedReservations finds confirmed reservations whose departure
// date has passed and marks them as "finished".
func (s *JobService) UpdateFinishedReservations() error {
	log.Println("Cron Job: Checking for reservations to mark as 'finished'...")

	reservationIDs, err := s.Repo.GetConfirmedReservationIDsPastDepart()
	if err != nil {
		return fmt.Errorf("cron job: failed to get confirmed reservations past departure: %w", err)
	}

	if len(reservationIDs) == 0 {
		log.Println("Cron Job: No confirmed reservations found past their departure date.")
		return nil
	}

	log.Printf("Cron Job: Found %d reservations to mark as 'finished'. IDs: %v", len(reservationIDs), reservationIDs)

	if err := s.Repo.UpdateReservationStatuses(reservationIDs, statutFinished); err != nil {
		return fmt.Errorf("cron job: failed to update reservation statuses: %w", err)
	}

	log.Printf("Cron Job: Successfully updated %d reservations to 'finished'.", len(reservationIDs))
	return nil
}
