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

const clientsCollection = "clients"

// firestoreClientRepository implements ClientRepository using Firestore.
type firestoreClientRepository struct {
	client *firestore.Client
}

// NewFirestoreClientRepository creates a new Firestore-backed ClientRepository.
func NewFirestoreClientRepository(client *firestore.Client) ClientRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ClientRepository.")
	}
	return &firestoreClientRepository{client: client}
}

func (r *firestoreClientRepository) Create(ctx context.Context, c *models.Client) (string, error) {
	docRef := r.client.Collection(clientsCollection).NewDoc()
	c.ID = docRef.ID
	if _, err := docRef.Create(ctx, c); err != nil {
		return "", fmt.Errorf("failed to create client: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreClientRepository) GetByID(ctx context.Context, clientID string) (*models.Client, error) {
	if clientID == "" {
		return nil, errors.New("clientID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(clientsCollection).Doc(clientID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("client with ID '%s' not found: %w", clientID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get client with ID '%s': %w", clientID, err)
	}

	var c models.Client
	if err := docSnap.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to decode client data for ID '%s': %w", clientID, err)
	}
	c.ID = docSnap.Ref.ID
	return &c, nil
}

func (r *firestoreClientRepository) ListByOffice(ctx context.Context, officeID string) ([]*models.Client, error) {
	if officeID == "" {
		return nil, errors.New("officeID cannot be empty for ListByOffice operation")
	}

	iter := r.client.Collection(clientsCollection).
		Where("officeId", "==", officeID).
		OrderBy("name", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var clients []*models.Client
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate clients for office '%s': %w", officeID, err)
		}
		var c models.Client
		if err := doc.DataTo(&c); err != nil {
			log.Printf("Error decoding client data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		c.ID = doc.Ref.ID
		clients = append(clients, &c)
	}
	return clients, nil
}

func (r *firestoreClientRepository) Update(ctx context.Context, c *models.Client) error {
	if c.ID == "" {
		return errors.New("client ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(clientsCollection).Doc(c.ID).Set(ctx, c, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update client with ID '%s': %w", c.ID, err)
	}
	return nil
}

func (r *firestoreClientRepository) Delete(ctx context.Context, clientID string) error {
	if clientID == "" {
		return errors.New("clientID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(clientsCollection).Doc(clientID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete client with ID '%s': %w", clientID, err)
	}
	return nil
}
