package core

import (
	"context"
	"fmt"
	"strings"

	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/db"
	"jusgestor-backend-go/internal/models"
)

// officeService implements OfficeService.
type officeService struct {
	offices  db.OfficeRepository
	resolver *IdentityResolver
}

// NewOfficeService creates an OfficeService.
func NewOfficeService(offices db.OfficeRepository, resolver *IdentityResolver) OfficeService {
	return &officeService{offices: offices, resolver: resolver}
}

func (s *officeService) Get(ctx context.Context, callerUID string) (*models.Office, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionOfficeView) {
		return nil, fmt.Errorf("%w: office settings", ErrForbidden)
	}

	office, err := s.offices.GetByID(ctx, caller.OfficeID)
	if err != nil {
		return nil, storeErr(err, "office")
	}
	return office, nil
}

// Update edits office settings (name, AI credential, SEO, tag-manager
// id). Only the master can write here.
func (s *officeService) Update(ctx context.Context, callerUID string, req models.UpdateOfficeRequest) (*models.Office, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionOfficeSettings) {
		return nil, fmt.Errorf("%w: only the office master can change settings", ErrForbidden)
	}

	office, err := s.offices.GetByID(ctx, caller.OfficeID)
	if err != nil {
		return nil, storeErr(err, "office")
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: office name cannot be empty", ErrInvalidInput)
		}
		office.Name = *req.Name
	}
	if req.GeminiAPIKey != nil {
		office.GeminiAPIKey = *req.GeminiAPIKey
	}
	if req.SEO != nil {
		office.SEO = *req.SEO
	}
	if req.TagManagerID != nil {
		office.TagManagerID = *req.TagManagerID
	}

	if err := s.offices.Update(ctx, office); err != nil {
		return nil, storeErr(err, "update office")
	}
	return office, nil
}
