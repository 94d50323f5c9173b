package db

import (
	"context"

	"jusgestor-backend-go/internal/models"
)

// UserRepository defines the interface for user document storage.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ListByOffice(ctx context.Context, officeID string) ([]*models.User, error)
	// MasterExists reports whether any user with the master role exists
	// anywhere in the store. It gates the public signup flow.
	MasterExists(ctx context.Context) (bool, error)
}

// OfficeRepository defines the interface for office document storage.
type OfficeRepository interface {
	Create(ctx context.Context, office *models.Office) (string, error)
	GetByID(ctx context.Context, officeID string) (*models.Office, error)
	Update(ctx context.Context, office *models.Office) error
}

// ClientRepository defines the interface for client document storage.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) (string, error)
	GetByID(ctx context.Context, clientID string) (*models.Client, error)
	ListByOffice(ctx context.Context, officeID string) ([]*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, clientID string) error
}

// ProcessRepository defines the interface for process document storage,
// including the documents and chatMessages subcollections.
type ProcessRepository interface {
	Create(ctx context.Context, process *models.Process) (string, error)
	GetByID(ctx context.Context, processID string) (*models.Process, error)
	ListByOffice(ctx context.Context, officeID string) ([]*models.Process, error)
	Update(ctx context.Context, process *models.Process) error
	Delete(ctx context.Context, processID string) error

	// AppendMovement appends via the store's array-union primitive:
	// appending an element deep-equal to an existing one is a no-op.
	AppendMovement(ctx context.Context, processID string, m models.Movement) error
	AddCollaborator(ctx context.Context, processID, userID string) error
	RemoveCollaborator(ctx context.Context, processID, userID string) error

	AddDocument(ctx context.Context, processID string, doc *models.ProcessDocument) (string, error)
	ListDocuments(ctx context.Context, processID string) ([]*models.ProcessDocument, error)

	AddChatMessage(ctx context.Context, processID string, msg *models.ChatMessage) (string, error)
	ListChatMessages(ctx context.Context, processID string) ([]*models.ChatMessage, error)
}

// EventRepository defines the interface for agenda storage.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) (string, error)
	GetByID(ctx context.Context, eventID string) (*models.Event, error)
	ListByOffice(ctx context.Context, officeID string) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, eventID string) error
}

// FinancialTaskRepository defines the interface for financial storage.
type FinancialTaskRepository interface {
	Create(ctx context.Context, task *models.FinancialTask) (string, error)
	GetByID(ctx context.Context, taskID string) (*models.FinancialTask, error)
	ListByOffice(ctx context.Context, officeID string) ([]*models.FinancialTask, error)
	Update(ctx context.Context, task *models.FinancialTask) error
	Delete(ctx context.Context, taskID string) error
}

// TemplateRepository defines the interface for document-template storage.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *models.DocumentTemplate) (string, error)
	GetByID(ctx context.Context, templateID string) (*models.DocumentTemplate, error)
	ListByOffice(ctx context.Context, officeID string) ([]*models.DocumentTemplate, error)
	Update(ctx context.Context, tpl *models.DocumentTemplate) error
	Delete(ctx context.Context, templateID string) error
}

// ContactRepository defines the interface for contact-request storage.
type ContactRepository interface {
	Create(ctx context.Context, req *models.ContactRequest) (string, error)
	GetByID(ctx context.Context, requestID string) (*models.ContactRequest, error)
	ListByOffice(ctx context.Context, officeID string) ([]*models.ContactRequest, error)
	UpdateStatus(ctx context.Context, requestID string, status models.ContactRequestStatus) error
}
