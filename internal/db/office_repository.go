package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"jusgestor-backend-go/internal/models"
)

const officesCollection = "offices"

// firestoreOfficeRepository implements OfficeRepository using Firestore.
type firestoreOfficeRepository struct {
	client *firestore.Client
}

// NewFirestoreOfficeRepository creates a new Firestore-backed OfficeRepository.
func NewFirestoreOfficeRepository(client *firestore.Client) OfficeRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for OfficeRepository.")
	}
	return &firestoreOfficeRepository{client: client}
}

func (r *firestoreOfficeRepository) Create(ctx context.Context, office *models.Office) (string, error) {
	docRef := r.client.Collection(officesCollection).NewDoc()
	office.ID = docRef.ID
	if _, err := docRef.Create(ctx, office); err != nil {
		return "", fmt.Errorf("failed to create office: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreOfficeRepository) GetByID(ctx context.Context, officeID string) (*models.Office, error) {
	if officeID == "" {
		return nil, errors.New("officeID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(officesCollection).Doc(officeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("office with ID '%s' not found: %w", officeID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get office with ID '%s': %w", officeID, err)
	}

	var office models.Office
	if err := docSnap.DataTo(&office); err != nil {
		return nil, fmt.Errorf("failed to decode office data for ID '%s': %w", officeID, err)
	}
	office.ID = docSnap.Ref.ID
	return &office, nil
}

func (r *firestoreOfficeRepository) Update(ctx context.Context, office *models.Office) error {
	if office.ID == "" {
		return errors.New("office ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(officesCollection).Doc(office.ID).Set(ctx, office, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update office with ID '%s': %w", office.ID, err)
	}
	return nil
}
