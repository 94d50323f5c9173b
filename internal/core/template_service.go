package core

import (
	"context"
	"fmt"
	"strings"

	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/db"
	"jusgestor-backend-go/internal/models"
)

type templateService struct {
	templates db.TemplateRepository
	resolver  *IdentityResolver
}

// NewTemplateService creates a TemplateService.
func NewTemplateService(templates db.TemplateRepository, resolver *IdentityResolver) TemplateService {
	return &templateService{templates: templates, resolver: resolver}
}

func (s *templateService) getScoped(ctx context.Context, caller Identity, templateID string) (*models.DocumentTemplate, error) {
	t, err := s.templates.GetByID(ctx, templateID)
	if err != nil {
		return nil, storeErr(err, "template")
	}
	if t.OfficeID != caller.OfficeID {
		return nil, fmt.Errorf("%w: template", ErrNotFound)
	}
	return t, nil
}

func (s *templateService) Create(ctx context.Context, callerUID string, req models.CreateTemplateRequest) (*models.DocumentTemplate, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionTemplateManage) {
		return nil, fmt.Errorf("%w: only the office master can manage templates", ErrForbidden)
	}

	t := &models.DocumentTemplate{
		Title:     req.Title,
		Content:   req.Content,
		OfficeID:  caller.OfficeID,
		CreatedBy: caller.UID,
	}
	if _, err := s.templates.Create(ctx, t); err != nil {
		return nil, storeErr(err, "create template")
	}
	return t, nil
}

func (s *templateService) Get(ctx context.Context, callerUID, templateID string) (*models.DocumentTemplate, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionTemplateView) {
		return nil, fmt.Errorf("%w: templates", ErrForbidden)
	}
	return s.getScoped(ctx, caller, templateID)
}

func (s *templateService) List(ctx context.Context, callerUID string) ([]*models.DocumentTemplate, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionTemplateView) {
		return nil, fmt.Errorf("%w: templates", ErrForbidden)
	}
	templates, err := s.templates.ListByOffice(ctx, caller.OfficeID)
	if err != nil {
		return nil, storeErr(err, "list templates")
	}
	return templates, nil
}

func (s *templateService) Update(ctx context.Context, callerUID, templateID string, req models.UpdateTemplateRequest) (*models.DocumentTemplate, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionTemplateManage) {
		return nil, fmt.Errorf("%w: only the office master can manage templates", ErrForbidden)
	}

	t, err := s.getScoped(ctx, caller, templateID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		t.Title = *req.Title
	}
	if req.Content != nil {
		t.Content = *req.Content
	}
	if err := s.templates.Update(ctx, t); err != nil {
		return nil, storeErr(err, "update template")
	}
	return t, nil
}

func (s *templateService) Delete(ctx context.Context, callerUID, templateID string) error {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return err
	}
	if !caller.Can(authz.ActionTemplateManage) {
		return fmt.Errorf("%w: only the office master can manage templates", ErrForbidden)
	}
	if _, err := s.getScoped(ctx, caller, templateID); err != nil {
		return err
	}
	if err := s.templates.Delete(ctx, templateID); err != nil {
		return storeErr(err, "delete template")
	}
	return nil
}
