package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"estudiodanza/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// CleanupPastDates elimina del calendario los días anteriores a hoy para que
// no sigan apareciendo en el panel de administración.
func (s *JobService) CleanupPastDates(ctx context.Context) error {
	log.Println("Cron Job: Checking for past calendar days to remove...")

	today := time.Now().Format("2006-01-02")
	dates, err := s.Repo.GetCalendarDatesBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("cron job: failed to get past calendar days: %w", err)
	}

	if len(dates) == 0 {
		log.Println("Cron Job: No past calendar days found.")
		return nil
	}

	log.Printf("Cron Job: Found %d past calendar days to remove: %v", len(dates), dates)

	if err := s.Repo.DeleteCalendarDates(ctx, dates); err != nil {
		return fmt.Errorf("cron job: failed to delete past calendar days: %w", err)
	}

	log.Printf("Cron Job: Successfully removed %d past calendar days.", len(dates))
	return nil
}
