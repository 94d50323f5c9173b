package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"jusgestor-backend-go/internal/models"
)

const eventsCollection = "events"

// firestoreEventRepository implements EventRepository using Firestore.
type firestoreEventRepository struct {
	client *firestore.Client
}

// NewFirestoreEventRepository creates a new Firestore-backed EventRepository.
func NewFirestoreEventRepository(client *firestore.Client) EventRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for EventRepository.")
	}
	return &firestoreEventRepository{client: client}
}

func (r *firestoreEventRepository) Create(ctx context.Context, event *models.Event) (string, error) {
	docRef := r.client.Collection(eventsCollection).NewDoc()
	event.ID = docRef.ID
	if _, err := docRef.Create(ctx, event); err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreEventRepository) GetByID(ctx context.Context, eventID string) (*models.Event, error) {
	if eventID == "" {
		return nil, errors.New("eventID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(eventsCollection).Doc(eventID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("event with ID '%s' not found: %w", eventID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get event with ID '%s': %w", eventID, err)
	}

	var event models.Event
	if err := docSnap.DataTo(&event); err != nil {
		return nil, fmt.Errorf("failed to decode event data for ID '%s': %w", eventID, err)
	}
	event.ID = docSnap.Ref.ID
	return &event, nil
}

func (r *firestoreEventRepository) ListByOffice(ctx context.Context, officeID string) ([]*models.Event, error) {
	if officeID == "" {
		return nil, errors.New("officeID cannot be empty for ListByOffice operation")
	}

	iter := r.client.Collection(eventsCollection).
		Where("officeId", "==", officeID).
		OrderBy("date", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var events []*models.Event
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events for office '%s': %w", officeID, err)
		}
		var event models.Event
		if err := doc.DataTo(&event); err != nil {
			log.Printf("Error decoding event data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		event.ID = doc.Ref.ID
		events = append(events, &event)
	}
	return events, nil
}

func (r *firestoreEventRepository) Update(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		return errors.New("event ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(eventsCollection).Doc(event.ID).Set(ctx, event, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update event with ID '%s': %w", event.ID, err)
	}
	return nil
}

func (r *firestoreEventRepository) Delete(ctx context.Context, eventID string) error {
	if eventID == "" {
		return errors.New("eventID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(eventsCollection).Doc(eventID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete event with ID '%s': %w", eventID, err)
	}
	return nil
}
