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

const contactRequestsCollection = "contact_requests"

// firestoreContactRepository implements ContactRepository using
// Firestore.
type firestoreContactRepository struct {
	client *firestore.Client
}

// NewFirestoreContactRepository creates a new Firestore-backed
// ContactRepository.
func NewFirestoreContactRepository(client *firestore.Client) ContactRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ContactRepository.")
	}
	return &firestoreContactRepository{client: client}
}

func (r *firestoreContactRepository) Create(ctx context.Context, req *models.ContactRequest) (string, error) {
	docRef := r.client.Collection(contactRequestsCollection).NewDoc()
	req.ID = docRef.ID
	if _, err := docRef.Create(ctx, req); err != nil {
		return "", fmt.Errorf("failed to create contact request: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreContactRepository) GetByID(ctx context.Context, requestID string) (*models.ContactRequest, error) {
	if requestID == "" {
		return nil, errors.New("requestID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(contactRequestsCollection).Doc(requestID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("contact request with ID '%s' not found: %w", requestID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get contact request with ID '%s': %w", requestID, err)
	}

	var req models.ContactRequest
	if err := docSnap.DataTo(&req); err != nil {
		return nil, fmt.Errorf("failed to decode contact request data for ID '%s': %w", requestID, err)
	}
	req.ID = docSnap.Ref.ID
	return &req, nil
}

func (r *firestoreContactRepository) ListByOffice(ctx context.Context, officeID string) ([]*models.ContactRequest, error) {
	if officeID == "" {
		return nil, errors.New("officeID cannot be empty for ListByOffice operation")
	}

	iter := r.client.Collection(contactRequestsCollection).
		Where("officeId", "==", officeID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var reqs []*models.ContactRequest
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate contact requests for office '%s': %w", officeID, err)
		}
		var req models.ContactRequest
		if err := doc.DataTo(&req); err != nil {
			log.Printf("Error decoding contact request data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		req.ID = doc.Ref.ID
		reqs = append(reqs, &req)
	}
	return reqs, nil
}

func (r *firestoreContactRepository) UpdateStatus(ctx context.Context, requestID string, statusValue models.ContactRequestStatus) error {
	if requestID == "" {
		return errors.New("requestID cannot be empty for UpdateStatus operation")
	}
	_, err := r.client.Collection(contactRequestsCollection).Doc(requestID).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(statusValue)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("contact request with ID '%s' not found: %w", requestID, ErrNotFound)
		}
		return fmt.Errorf("failed to update contact request '%s' status: %w", requestID, err)
	}
	return nil
}
