package core

import (
	"context"
	"fmt"

	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/db"
	"jusgestor-backend-go/internal/models"
)

type contactService struct {
	contacts db.ContactRepository
	offices  db.OfficeRepository
	resolver *IdentityResolver
}

// NewContactService creates a ContactService.
func NewContactService(contacts db.ContactRepository, offices db.OfficeRepository, resolver *IdentityResolver) ContactService {
	return &contactService{contacts: contacts, offices: offices, resolver: resolver}
}

// Submit accepts a contact-form message from the public site. The
// target office must exist; everything else about the payload is
// validated at the transport layer.
func (s *contactService) Submit(ctx context.Context, req models.SubmitContactRequest) (*models.ContactRequest, error) {
	if _, err := s.offices.GetByID(ctx, req.OfficeID); err != nil {
		return nil, storeErr(err, "office")
	}

	cr := &models.ContactRequest{
		OfficeID: req.OfficeID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
		Status:   models.ContactNovo,
	}
	if _, err := s.contacts.Create(ctx, cr); err != nil {
		return nil, storeErr(err, "submit contact request")
	}
	return cr, nil
}

func (s *contactService) List(ctx context.Context, callerUID string) ([]*models.ContactRequest, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionContactView) {
		return nil, fmt.Errorf("%w: contact requests", ErrForbidden)
	}
	requests, err := s.contacts.ListByOffice(ctx, caller.OfficeID)
	if err != nil {
		return nil, storeErr(err, "list contact requests")
	}
	return requests, nil
}

func (s *contactService) MarkHandled(ctx context.Context, callerUID, requestID string) error {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return err
	}
	if !caller.Can(authz.ActionContactManage) {
		return fmt.Errorf("%w: only the office master can triage contact requests", ErrForbidden)
	}

	cr, err := s.contacts.GetByID(ctx, requestID)
	if err != nil {
		return storeErr(err, "contact request")
	}
	if cr.OfficeID != caller.OfficeID {
		return fmt.Errorf("%w: contact request", ErrNotFound)
	}

	if err := s.contacts.UpdateStatus(ctx, requestID, models.ContactAtendido); err != nil {
		return storeErr(err, "update contact request")
	}
	return nil
}
