package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type JobRepository struct {
	Client *firestore.Client
}

func NewJobRepository(client *firestore.Client) *JobRepository {
	return &JobRepository{Client: client}
}

// GetCalendarDatesBefore busca los IDs de los días del calendario anteriores
// a la fecha dada (YYYY-MM-DD).
func (r *JobRepository) GetCalendarDatesBefore(ctx context.Context, date string) ([]string, error) {
	iter := r.Client.Collection(CalendarCollection).
		Where(firestore.DocumentID, "<", date).
		Documents(ctx)
	defer iter.Stop()

	var dates []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error querying past calendar days: %w", err)
		}
		dates = append(dates, doc.Ref.ID)
	}
	return dates, nil
}

// DeleteCalendarDates elimina los documentos del calendario indicados.
func (r *JobRepository) DeleteCalendarDates(ctx context.Context, dates []string) error {
	if len(dates) == 0 {
		return nil // No hay nada que eliminar
	}
	bw := r.Client.BulkWriter(ctx)
	for _, date := range dates {
		if _, err := bw.Delete(r.Client.Collection(CalendarCollection).Doc(date)); err != nil {
			return fmt.Errorf("error scheduling delete for %s: %w", date, err)
		}
	}
	bw.End()
	return nil
}
