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

const (
	processesCollection    = "processes"
	documentsSubcollection = "documents"
	chatSubcollection      = "chatMessages"
)

// firestoreProcessRepository implements ProcessRepository using
// Firestore, with documents and chatMessages as subcollections of the
// process document.
type firestoreProcessRepository struct {
	client *firestore.Client
}

// NewFirestoreProcessRepository creates a new Firestore-backed ProcessRepository.
func NewFirestoreProcessRepository(client *firestore.Client) ProcessRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ProcessRepository.")
	}
	return &firestoreProcessRepository{client: client}
}

func (r *firestoreProcessRepository) Create(ctx context.Context, p *models.Process) (string, error) {
	docRef := r.client.Collection(processesCollection).NewDoc()
	p.ID = docRef.ID
	if p.CollaboratorIDs == nil {
		p.CollaboratorIDs = []string{}
	}
	if p.Movements == nil {
		p.Movements = []models.Movement{}
	}
	if _, err := docRef.Create(ctx, p); err != nil {
		return "", fmt.Errorf("failed to create process: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreProcessRepository) GetByID(ctx context.Context, processID string) (*models.Process, error) {
	if processID == "" {
		return nil, errors.New("processID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(processesCollection).Doc(processID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("process with ID '%s' not found: %w", processID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get process with ID '%s': %w", processID, err)
	}

	var p models.Process
	if err := docSnap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode process data for ID '%s': %w", processID, err)
	}
	p.ID = docSnap.Ref.ID
	p.Status = models.NormalizeProcessStatus(string(p.Status))
	return &p, nil
}

func (r *firestoreProcessRepository) ListByOffice(ctx context.Context, officeID string) ([]*models.Process, error) {
	if officeID == "" {
		return nil, errors.New("officeID cannot be empty for ListByOffice operation")
	}

	iter := r.client.Collection(processesCollection).
		Where("officeId", "==", officeID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var processes []*models.Process
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate processes for office '%s': %w", officeID, err)
		}
		var p models.Process
		if err := doc.DataTo(&p); err != nil {
			log.Printf("Error decoding process data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		p.ID = doc.Ref.ID
		p.Status = models.NormalizeProcessStatus(string(p.Status))
		processes = append(processes, &p)
	}
	return processes, nil
}

func (r *firestoreProcessRepository) Update(ctx context.Context, p *models.Process) error {
	if p.ID == "" {
		return errors.New("process ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(processesCollection).Doc(p.ID).Set(ctx, p, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update process with ID '%s': %w", p.ID, err)
	}
	return nil
}

func (r *firestoreProcessRepository) Delete(ctx context.Context, processID string) error {
	if processID == "" {
		return errors.New("processID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(processesCollection).Doc(processID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete process with ID '%s': %w", processID, err)
	}
	return nil
}

// AppendMovement uses ArrayUnion so the append is atomic per document
// and an element deep-equal to an existing one is not duplicated.
func (r *firestoreProcessRepository) AppendMovement(ctx context.Context, processID string, m models.Movement) error {
	if processID == "" {
		return errors.New("processID cannot be empty for AppendMovement operation")
	}
	_, err := r.client.Collection(processesCollection).Doc(processID).Update(ctx, []firestore.Update{
		{Path: "movements", Value: firestore.ArrayUnion(m)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("process with ID '%s' not found: %w", processID, ErrNotFound)
		}
		return fmt.Errorf("failed to append movement to process '%s': %w", processID, err)
	}
	return nil
}

func (r *firestoreProcessRepository) AddCollaborator(ctx context.Context, processID, userID string) error {
	if processID == "" || userID == "" {
		return errors.New("processID and userID cannot be empty for AddCollaborator operation")
	}
	_, err := r.client.Collection(processesCollection).Doc(processID).Update(ctx, []firestore.Update{
		{Path: "collaboratorIds", Value: firestore.ArrayUnion(userID)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("process with ID '%s' not found: %w", processID, ErrNotFound)
		}
		return fmt.Errorf("failed to add collaborator '%s' to process '%s': %w", userID, processID, err)
	}
	return nil
}

func (r *firestoreProcessRepository) RemoveCollaborator(ctx context.Context, processID, userID string) error {
	if processID == "" || userID == "" {
		return errors.New("processID and userID cannot be empty for RemoveCollaborator operation")
	}
	_, err := r.client.Collection(processesCollection).Doc(processID).Update(ctx, []firestore.Update{
		{Path: "collaboratorIds", Value: firestore.ArrayRemove(userID)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("process with ID '%s' not found: %w", processID, ErrNotFound)
		}
		return fmt.Errorf("failed to remove collaborator '%s' from process '%s': %w", userID, processID, err)
	}
	return nil
}

func (r *firestoreProcessRepository) AddDocument(ctx context.Context, processID string, doc *models.ProcessDocument) (string, error) {
	if processID == "" {
		return "", errors.New("processID cannot be empty for AddDocument operation")
	}
	docRef := r.client.Collection(processesCollection).Doc(processID).Collection(documentsSubcollection).NewDoc()
	doc.ID = docRef.ID
	if _, err := docRef.Create(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to add document to process '%s': %w", processID, err)
	}
	return docRef.ID, nil
}

func (r *firestoreProcessRepository) ListDocuments(ctx context.Context, processID string) ([]*models.ProcessDocument, error) {
	if processID == "" {
		return nil, errors.New("processID cannot be empty for ListDocuments operation")
	}

	iter := r.client.Collection(processesCollection).Doc(processID).
		Collection(documentsSubcollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var docs []*models.ProcessDocument
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate documents for process '%s': %w", processID, err)
		}
		var d models.ProcessDocument
		if err := snap.DataTo(&d); err != nil {
			log.Printf("Error decoding process document (ID: %s): %v. Skipping.", snap.Ref.ID, err)
			continue
		}
		d.ID = snap.Ref.ID
		docs = append(docs, &d)
	}
	return docs, nil
}

func (r *firestoreProcessRepository) AddChatMessage(ctx context.Context, processID string, msg *models.ChatMessage) (string, error) {
	if processID == "" {
		return "", errors.New("processID cannot be empty for AddChatMessage operation")
	}
	docRef := r.client.Collection(processesCollection).Doc(processID).Collection(chatSubcollection).NewDoc()
	msg.ID = docRef.ID
	if _, err := docRef.Create(ctx, msg); err != nil {
		return "", fmt.Errorf("failed to add chat message to process '%s': %w", processID, err)
	}
	return docRef.ID, nil
}

func (r *firestoreProcessRepository) ListChatMessages(ctx context.Context, processID string) ([]*models.ChatMessage, error) {
	if processID == "" {
		return nil, errors.New("processID cannot be empty for ListChatMessages operation")
	}

	iter := r.client.Collection(processesCollection).Doc(processID).
		Collection(chatSubcollection).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var msgs []*models.ChatMessage
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate chat messages for process '%s': %w", processID, err)
		}
		var m models.ChatMessage
		if err := snap.DataTo(&m); err != nil {
			log.Printf("Error decoding chat message (ID: %s): %v. Skipping.", snap.Ref.ID, err)
			continue
		}
		m.ID = snap.Ref.ID
		msgs = append(msgs, &m)
	}
	return msgs, nil
}
