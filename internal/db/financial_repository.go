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

const financialTasksCollection = "financial_tasks"

// firestoreFinancialRepository implements FinancialTaskRepository using
// Firestore.
type firestoreFinancialRepository struct {
	client *firestore.Client
}

// NewFirestoreFinancialRepository creates a new Firestore-backed
// FinancialTaskRepository.
func NewFirestoreFinancialRepository(client *firestore.Client) FinancialTaskRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for FinancialTaskRepository.")
	}
	return &firestoreFinancialRepository{client: client}
}

func (r *firestoreFinancialRepository) Create(ctx context.Context, task *models.FinancialTask) (string, error) {
	docRef := r.client.Collection(financialTasksCollection).NewDoc()
	task.ID = docRef.ID
	if _, err := docRef.Create(ctx, task); err != nil {
		return "", fmt.Errorf("failed to create financial task: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreFinancialRepository) GetByID(ctx context.Context, taskID string) (*models.FinancialTask, error) {
	if taskID == "" {
		return nil, errors.New("taskID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(financialTasksCollection).Doc(taskID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("financial task with ID '%s' not found: %w", taskID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get financial task with ID '%s': %w", taskID, err)
	}

	var task models.FinancialTask
	if err := docSnap.DataTo(&task); err != nil {
		return nil, fmt.Errorf("failed to decode financial task data for ID '%s': %w", taskID, err)
	}
	task.ID = docSnap.Ref.ID
	return &task, nil
}

func (r *firestoreFinancialRepository) ListByOffice(ctx context.Context, officeID string) ([]*models.FinancialTask, error) {
	if officeID == "" {
		return nil, errors.New("officeID cannot be empty for ListByOffice operation")
	}

	iter := r.client.Collection(financialTasksCollection).
		Where("officeId", "==", officeID).
		OrderBy("dueDate", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var tasks []*models.FinancialTask
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate financial tasks for office '%s': %w", officeID, err)
		}
		var task models.FinancialTask
		if err := doc.DataTo(&task); err != nil {
			log.Printf("Error decoding financial task data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		task.ID = doc.Ref.ID
		tasks = append(tasks, &task)
	}
	return tasks, nil
}

func (r *firestoreFinancialRepository) Update(ctx context.Context, task *models.FinancialTask) error {
	if task.ID == "" {
		return errors.New("task ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(financialTasksCollection).Doc(task.ID).Set(ctx, task, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update financial task with ID '%s': %w", task.ID, err)
	}
	return nil
}

func (r *firestoreFinancialRepository) Delete(ctx context.Context, taskID string) error {
	if taskID == "" {
		return errors.New("taskID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(financialTasksCollection).Doc(taskID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete financial task with ID '%s': %w", taskID, err)
	}
	return nil
}
