package core

import (
	"context"
	"io"

	"jusgestor-backend-go/internal/ai"
	"jusgestor-backend-go/internal/models"
)

// AccountService covers signup and the caller's own profile.
type AccountService interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
	GetProfile(ctx context.Context, uid string) (*models.User, error)
	UpdateProfile(ctx context.Context, uid string, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, uid, newPassword string) error
	UploadProfilePhoto(ctx context.Context, uid, filename, contentType string, r io.Reader) (string, error)
}

// TeamService covers member invitation and the office roster.
type TeamService interface {
	// Invite returns the created member and the one-time temporary
	// password; the password is never persisted by this application.
	Invite(ctx context.Context, callerUID string, req models.InviteRequest) (*models.User, string, error)
	ListMembers(ctx context.Context, callerUID string) ([]*models.User, error)
}

// OfficeService covers office settings.
type OfficeService interface {
	Get(ctx context.Context, callerUID string) (*models.Office, error)
	Update(ctx context.Context, callerUID string, req models.UpdateOfficeRequest) (*models.Office, error)
}

// ClientService covers client records.
type ClientService interface {
	Create(ctx context.Context, callerUID string, req models.CreateClientRequest) (*models.Client, error)
	Get(ctx context.Context, callerUID, clientID string) (*models.Client, error)
	List(ctx context.Context, callerUID string) ([]*models.Client, error)
	Update(ctx context.Context, callerUID, clientID string, req models.UpdateClientRequest) (*models.Client, error)
	Delete(ctx context.Context, callerUID, clientID string) error
}

// ProcessService covers legal cases, their ACL, movement log and
// subcollections.
type ProcessService interface {
	Create(ctx context.Context, callerUID string, req models.CreateProcessRequest) (*models.Process, error)
	Get(ctx context.Context, callerUID, processID string) (*models.Process, error)
	List(ctx context.Context, callerUID string) ([]*models.Process, error)
	Update(ctx context.Context, callerUID, processID string, req models.UpdateProcessRequest) (*models.Process, error)
	Delete(ctx context.Context, callerUID, processID string) error

	AppendMovement(ctx context.Context, callerUID, processID string, req models.AppendMovementRequest) error
	AddCollaborator(ctx context.Context, callerUID, processID, targetUserID string) error
	RemoveCollaborator(ctx context.Context, callerUID, processID, targetUserID string) error

	PostChatMessage(ctx context.Context, callerUID, processID, text string) (*models.ChatMessage, error)
	ListChatMessages(ctx context.Context, callerUID, processID string) ([]*models.ChatMessage, error)

	UploadDocument(ctx context.Context, callerUID, processID, filename, contentType string, size int64, r io.Reader) (*models.ProcessDocument, error)
	ListDocuments(ctx context.Context, callerUID, processID string) ([]*models.ProcessDocument, error)
}

// EventService covers the agenda.
type EventService interface {
	Create(ctx context.Context, callerUID string, req models.CreateEventRequest) (*models.Event, error)
	List(ctx context.Context, callerUID string, filter EventFilter) ([]*models.Event, error)
	Update(ctx context.Context, callerUID, eventID string, req models.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, callerUID, eventID string) error
	// Confirm marks a hearing as confirmed; it is the one agenda write
	// a secretary may perform.
	Confirm(ctx context.Context, callerUID, eventID string) (*models.Event, error)
}

// FinancialService covers receivables/payables.
type FinancialService interface {
	Create(ctx context.Context, callerUID string, req models.CreateFinancialTaskRequest) (*models.FinancialTask, error)
	List(ctx context.Context, callerUID string) ([]*models.FinancialTask, error)
	Update(ctx context.Context, callerUID, taskID string, req models.UpdateFinancialTaskRequest) (*models.FinancialTask, error)
	Delete(ctx context.Context, callerUID, taskID string) error
	ToggleStatus(ctx context.Context, callerUID, taskID string) (*models.FinancialTask, error)
}

// TemplateService covers document templates.
type TemplateService interface {
	Create(ctx context.Context, callerUID string, req models.CreateTemplateRequest) (*models.DocumentTemplate, error)
	Get(ctx context.Context, callerUID, templateID string) (*models.DocumentTemplate, error)
	List(ctx context.Context, callerUID string) ([]*models.DocumentTemplate, error)
	Update(ctx context.Context, callerUID, templateID string, req models.UpdateTemplateRequest) (*models.DocumentTemplate, error)
	Delete(ctx context.Context, callerUID, templateID string) error
}

// ContactService covers the public contact form and its triage.
type ContactService interface {
	// Submit is the only unauthenticated write in the system.
	Submit(ctx context.Context, req models.SubmitContactRequest) (*models.ContactRequest, error)
	List(ctx context.Context, callerUID string) ([]*models.ContactRequest, error)
	MarkHandled(ctx context.Context, callerUID, requestID string) error
}

// AIService covers the three generative-text features.
type AIService interface {
	DraftPetition(ctx context.Context, callerUID string, in ai.PetitionInput) (ai.PetitionOutput, error)
	// SimulateStatusUpdate generates the next plausible movement for a
	// process and appends it to the movement log.
	SimulateStatusUpdate(ctx context.Context, callerUID, processID string) (*models.Movement, error)
	SummarizeBrief(ctx context.Context, callerUID string, in ai.SummaryInput) (ai.SummaryOutput, error)
}

// InviteMailer notifies invited members. Implementations must treat
// delivery as best-effort.
type InviteMailer interface {
	SendInvite(ctx context.Context, toEmail, toName, officeName string) error
}
