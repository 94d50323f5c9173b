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

const templatesCollection = "document_templates"

// firestoreTemplateRepository implements TemplateRepository using
// Firestore.
type firestoreTemplateRepository struct {
	client *firestore.Client
}

// NewFirestoreTemplateRepository creates a new Firestore-backed
// TemplateRepository.
func NewFirestoreTemplateRepository(client *firestore.Client) TemplateRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for TemplateRepository.")
	}
	return &firestoreTemplateRepository{client: client}
}

func (r *firestoreTemplateRepository) Create(ctx context.Context, tpl *models.DocumentTemplate) (string, error) {
	docRef := r.client.Collection(templatesCollection).NewDoc()
	tpl.ID = docRef.ID
	if _, err := docRef.Create(ctx, tpl); err != nil {
		return "", fmt.Errorf("failed to create document template: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreTemplateRepository) GetByID(ctx context.Context, templateID string) (*models.DocumentTemplate, error) {
	if templateID == "" {
		return nil, errors.New("templateID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(templatesCollection).Doc(templateID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("template with ID '%s' not found: %w", templateID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get template with ID '%s': %w", templateID, err)
	}

	var tpl models.DocumentTemplate
	if err := docSnap.DataTo(&tpl); err != nil {
		return nil, fmt.Errorf("failed to decode template data for ID '%s': %w", templateID, err)
	}
	tpl.ID = docSnap.Ref.ID
	return &tpl, nil
}

func (r *firestoreTemplateRepository) ListByOffice(ctx context.Context, officeID string) ([]*models.DocumentTemplate, error) {
	if officeID == "" {
		return nil, errors.New("officeID cannot be empty for ListByOffice operation")
	}

	iter := r.client.Collection(templatesCollection).
		Where("officeId", "==", officeID).
		OrderBy("title", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var templates []*models.DocumentTemplate
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate templates for office '%s': %w", officeID, err)
		}
		var tpl models.DocumentTemplate
		if err := doc.DataTo(&tpl); err != nil {
			log.Printf("Error decoding template data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		tpl.ID = doc.Ref.ID
		templates = append(templates, &tpl)
	}
	return templates, nil
}

func (r *firestoreTemplateRepository) Update(ctx context.Context, tpl *models.DocumentTemplate) error {
	if tpl.ID == "" {
		return errors.New("template ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(templatesCollection).Doc(tpl.ID).Set(ctx, tpl, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update template with ID '%s': %w", tpl.ID, err)
	}
	return nil
}

func (r *firestoreTemplateRepository) Delete(ctx context.Context, templateID string) error {
	if templateID == "" {
		return errors.New("templateID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(templatesCollection).Doc(templateID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete template with ID '%s': %w", templateID, err)
	}
	return nil
}
