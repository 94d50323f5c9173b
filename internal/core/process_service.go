package core

import (
	"context"
	"fmt"
	"io"
	"strings"

	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/db"
	"jusgestor-backend-go/internal/models"
	"jusgestor-backend-go/internal/storage"
)

// processService implements ProcessService. On top of the policy table
// it enforces the per-process ACL: a lawyer may only see or act on a
// process they own or collaborate on, while masters and secretaries
// operate at office scope (secretaries read-only, via the table).
type processService struct {
	processes db.ProcessRepository
	clients   db.ClientRepository
	users     db.UserRepository
	uploader  storage.Uploader
	resolver  *IdentityResolver
}

// NewProcessService creates a ProcessService.
func NewProcessService(
	processes db.ProcessRepository,
	clients db.ClientRepository,
	users db.UserRepository,
	uploader storage.Uploader,
	resolver *IdentityResolver,
) ProcessService {
	return &processService{
		processes: processes,
		clients:   clients,
		users:     users,
		uploader:  uploader,
		resolver:  resolver,
	}
}

// canTouch reports whether the caller may act on the process beyond
// the office boundary. Masters and secretaries pass; lawyers must be
// the owner or on the collaborator list.
func canTouch(caller Identity, p *models.Process) bool {
	if caller.Role != authz.RoleLawyer {
		return true
	}
	return p.OwnerID == caller.UID || p.HasCollaborator(caller.UID)
}

// getScoped fetches a process and enforces office + ACL. Cross-office
// lookups surface as not-found; an office-mate without ACL access gets
// forbidden.
func (s *processService) getScoped(ctx context.Context, caller Identity, processID string) (*models.Process, error) {
	p, err := s.processes.GetByID(ctx, processID)
	if err != nil {
		return nil, storeErr(err, "process")
	}
	if p.OfficeID != caller.OfficeID {
		return nil, fmt.Errorf("%w: process", ErrNotFound)
	}
	if !canTouch(caller, p) {
		return nil, fmt.Errorf("%w: you are not the owner or a collaborator of this process", ErrForbidden)
	}
	return p, nil
}

func (s *processService) Create(ctx context.Context, callerUID string, req models.CreateProcessRequest) (*models.Process, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionProcessCreate) {
		return nil, fmt.Errorf("%w: your role cannot create processes", ErrForbidden)
	}
	if strings.TrimSpace(req.ProcessNumber) == "" {
		return nil, fmt.Errorf("%w: process number is required", ErrInvalidInput)
	}

	ownerID := caller.UID
	if req.OwnerID != "" && req.OwnerID != caller.UID {
		// Only a master can assign a process to another lawyer.
		if caller.Role != authz.RoleMaster {
			return nil, fmt.Errorf("%w: only the office master can assign an owner", ErrForbidden)
		}
		owner, err := s.users.GetByID(ctx, req.OwnerID)
		if err != nil {
			return nil, storeErr(err, "owner")
		}
		if owner.OfficeID != caller.OfficeID {
			return nil, fmt.Errorf("%w: owner", ErrNotFound)
		}
		ownerID = owner.ID
	}

	if req.ClientID != "" {
		client, err := s.clients.GetByID(ctx, req.ClientID)
		if err != nil {
			return nil, storeErr(err, "client")
		}
		if client.OfficeID != caller.OfficeID {
			return nil, fmt.Errorf("%w: client", ErrNotFound)
		}
	}

	p := &models.Process{
		ProcessNumber:   req.ProcessNumber,
		Plaintiff:       req.Plaintiff,
		Defendant:       req.Defendant,
		Court:           req.Court,
		Subject:         req.Subject,
		Status:          models.NormalizeProcessStatus(req.Status),
		OfficeID:        caller.OfficeID,
		OwnerID:         ownerID,
		ClientID:        req.ClientID,
		CollaboratorIDs: []string{},
		Movements:       []models.Movement{},
	}
	if _, err := s.processes.Create(ctx, p); err != nil {
		return nil, storeErr(err, "create process")
	}
	return p, nil
}

func (s *processService) Get(ctx context.Context, callerUID, processID string) (*models.Process, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionProcessView) {
		return nil, fmt.Errorf("%w: processes", ErrForbidden)
	}
	return s.getScoped(ctx, caller, processID)
}

// List returns the office's processes, narrowed for lawyers to the
// ones they own or collaborate on.
func (s *processService) List(ctx context.Context, callerUID string) ([]*models.Process, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionProcessView) {
		return nil, fmt.Errorf("%w: processes", ErrForbidden)
	}

	all, err := s.processes.ListByOffice(ctx, caller.OfficeID)
	if err != nil {
		return nil, storeErr(err, "list processes")
	}
	if caller.Role != authz.RoleLawyer {
		return all, nil
	}

	visible := make([]*models.Process, 0, len(all))
	for _, p := range all {
		if canTouch(caller, p) {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

func (s *processService) Update(ctx context.Context, callerUID, processID string, req models.UpdateProcessRequest) (*models.Process, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionProcessUpdate) {
		return nil, fmt.Errorf("%w: your role cannot update processes", ErrForbidden)
	}

	p, err := s.getScoped(ctx, caller, processID)
	if err != nil {
		return nil, err
	}

	if req.ProcessNumber != nil {
		if strings.TrimSpace(*req.ProcessNumber) == "" {
			return nil, fmt.Errorf("%w: process number cannot be empty", ErrInvalidInput)
		}
		p.ProcessNumber = *req.ProcessNumber
	}
	if req.Plaintiff != nil {
		p.Plaintiff = *req.Plaintiff
	}
	if req.Defendant != nil {
		p.Defendant = *req.Defendant
	}
	if req.Court != nil {
		p.Court = *req.Court
	}
	if req.Subject != nil {
		p.Subject = *req.Subject
	}
	if req.Status != nil {
		p.Status = models.NormalizeProcessStatus(*req.Status)
	}
	if req.ClientID != nil {
		if *req.ClientID != "" {
			client, err := s.clients.GetByID(ctx, *req.ClientID)
			if err != nil {
				return nil, storeErr(err, "client")
			}
			if client.OfficeID != caller.OfficeID {
				return nil, fmt.Errorf("%w: client", ErrNotFound)
			}
		}
		p.ClientID = *req.ClientID
	}

	if err := s.processes.Update(ctx, p); err != nil {
		return nil, storeErr(err, "update process")
	}
	return p, nil
}

func (s *processService) Delete(ctx context.Context, callerUID, processID string) error {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return err
	}
	if !caller.Can(authz.ActionProcessDelete) {
		return fmt.Errorf("%w: only the office master can delete processes", ErrForbidden)
	}

	if _, err := s.getScoped(ctx, caller, processID); err != nil {
		return err
	}
	if err := s.processes.Delete(ctx, processID); err != nil {
		return storeErr(err, "delete process")
	}
	return nil
}

// AppendMovement appends one entry to the movement log. Appending is
// delegated to the store's array-union primitive, so the exact same
// movement sent twice lands as a single entry.
func (s *processService) AppendMovement(ctx context.Context, callerUID, processID string, req models.AppendMovementRequest) error {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return err
	}
	if !caller.Can(authz.ActionMovementAppend) {
		return fmt.Errorf("%w: your role cannot append movements", ErrForbidden)
	}
	if req.Date == "" || strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("%w: movement date and description are required", ErrInvalidInput)
	}

	if _, err := s.getScoped(ctx, caller, processID); err != nil {
		return err
	}

	m := models.Movement{Date: req.Date, Description: req.Description, Details: req.Details}
	if err := s.processes.AppendMovement(ctx, processID, m); err != nil {
		return storeErr(err, "append movement")
	}
	return nil
}

// AddCollaborator grants ACL access to an office-mate. Only the
// process owner or the master can change the list.
func (s *processService) AddCollaborator(ctx context.Context, callerUID, processID, targetUserID string) error {
	caller, err := s.collaboratorGate(ctx, callerUID, processID)
	if err != nil {
		return err
	}

	target, err := s.users.GetByID(ctx, targetUserID)
	if err != nil {
		return storeErr(err, "collaborator")
	}
	if target.OfficeID != caller.OfficeID {
		return fmt.Errorf("%w: collaborator", ErrNotFound)
	}

	if err := s.processes.AddCollaborator(ctx, processID, targetUserID); err != nil {
		return storeErr(err, "add collaborator")
	}
	return nil
}

func (s *processService) RemoveCollaborator(ctx context.Context, callerUID, processID, targetUserID string) error {
	if _, err := s.collaboratorGate(ctx, callerUID, processID); err != nil {
		return err
	}
	if err := s.processes.RemoveCollaborator(ctx, processID, targetUserID); err != nil {
		return storeErr(err, "remove collaborator")
	}
	return nil
}

// collaboratorGate resolves the caller and checks that they may manage
// the process ACL: policy allows the action and the caller is the
// owner or a master.
func (s *processService) collaboratorGate(ctx context.Context, callerUID, processID string) (Identity, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return Identity{}, err
	}
	if !caller.Can(authz.ActionCollaboratorManage) {
		return Identity{}, fmt.Errorf("%w: your role cannot manage collaborators", ErrForbidden)
	}

	p, err := s.processes.GetByID(ctx, processID)
	if err != nil {
		return Identity{}, storeErr(err, "process")
	}
	if p.OfficeID != caller.OfficeID {
		return Identity{}, fmt.Errorf("%w: process", ErrNotFound)
	}
	if caller.Role != authz.RoleMaster && p.OwnerID != caller.UID {
		return Identity{}, fmt.Errorf("%w: only the process owner or the master can manage collaborators", ErrForbidden)
	}
	return caller, nil
}

func (s *processService) PostChatMessage(ctx context.Context, callerUID, processID, text string) (*models.ChatMessage, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionProcessChatPost) {
		return nil, fmt.Errorf("%w: your role cannot post to the process chat", ErrForbidden)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message text is required", ErrInvalidInput)
	}

	if _, err := s.getScoped(ctx, caller, processID); err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		AuthorID:   caller.UID,
		AuthorName: caller.FullName,
		Text:       text,
	}
	if _, err := s.processes.AddChatMessage(ctx, processID, msg); err != nil {
		return nil, storeErr(err, "post chat message")
	}
	return msg, nil
}

func (s *processService) ListChatMessages(ctx context.Context, callerUID, processID string) ([]*models.ChatMessage, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionProcessView) {
		return nil, fmt.Errorf("%w: processes", ErrForbidden)
	}
	if _, err := s.getScoped(ctx, caller, processID); err != nil {
		return nil, err
	}

	msgs, err := s.processes.ListChatMessages(ctx, processID)
	if err != nil {
		return nil, storeErr(err, "list chat messages")
	}
	return msgs, nil
}

func (s *processService) UploadDocument(ctx context.Context, callerUID, processID, filename, contentType string, size int64, r io.Reader) (*models.ProcessDocument, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionProcessDocumentUpload) {
		return nil, fmt.Errorf("%w: your role cannot upload process documents", ErrForbidden)
	}
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}

	if _, err := s.getScoped(ctx, caller, processID); err != nil {
		return nil, err
	}

	path := storage.ProcessDocumentPath(processID, filename)
	if _, err := s.uploader.Upload(ctx, path, contentType, r); err != nil {
		return nil, fmt.Errorf("%w: document upload: %v", ErrUpstream, err)
	}

	doc := &models.ProcessDocument{
		Name:        filename,
		StoragePath: path,
		ContentType: contentType,
		Size:        size,
		UploadedBy:  caller.UID,
	}
	if _, err := s.processes.AddDocument(ctx, processID, doc); err != nil {
		return nil, fmt.Errorf("%w: document metadata: %v", ErrUpstream, err)
	}
	return doc, nil
}

func (s *processService) ListDocuments(ctx context.Context, callerUID, processID string) ([]*models.ProcessDocument, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionProcessView) {
		return nil, fmt.Errorf("%w: processes", ErrForbidden)
	}
	if _, err := s.getScoped(ctx, caller, processID); err != nil {
		return nil, err
	}

	docs, err := s.processes.ListDocuments(ctx, processID)
	if err != nil {
		return nil, storeErr(err, "list documents")
	}
	return docs, nil
}
