package core

import (
	"context"
	"fmt"
	"strings"

	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/db"
	"jusgestor-backend-go/internal/models"
)

// financialService implements FinancialService. The money module is
// master-only for writes; secretaries may read and flip the paid bit,
// lawyers have no access at all.
type financialService struct {
	tasks    db.FinancialTaskRepository
	resolver *IdentityResolver
}

// NewFinancialService creates a FinancialService.
func NewFinancialService(tasks db.FinancialTaskRepository, resolver *IdentityResolver) FinancialService {
	return &financialService{tasks: tasks, resolver: resolver}
}

func validFinancialType(t string) (models.FinancialTaskType, error) {
	switch models.FinancialTaskType(t) {
	case models.FinancialReceita, models.FinancialDespesa:
		return models.FinancialTaskType(t), nil
	}
	return "", fmt.Errorf("%w: unknown financial task type %q", ErrInvalidInput, t)
}

func (s *financialService) getScoped(ctx context.Context, caller Identity, taskID string) (*models.FinancialTask, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, storeErr(err, "financial task")
	}
	if t.OfficeID != caller.OfficeID {
		return nil, fmt.Errorf("%w: financial task", ErrNotFound)
	}
	return t, nil
}

func (s *financialService) Create(ctx context.Context, callerUID string, req models.CreateFinancialTaskRequest) (*models.FinancialTask, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionFinanceManage) {
		return nil, fmt.Errorf("%w: only the office master can manage finances", ErrForbidden)
	}

	typ, err := validFinancialType(req.Type)
	if err != nil {
		return nil, err
	}
	if req.Value <= 0 {
		return nil, fmt.Errorf("%w: value must be positive", ErrInvalidInput)
	}

	t := &models.FinancialTask{
		Title:     req.Title,
		Type:      typ,
		DueDate:   req.DueDate,
		Value:     req.Value,
		Status:    models.FinancialPendente,
		OfficeID:  caller.OfficeID,
		ProcessID: req.ProcessID,
	}
	if _, err := s.tasks.Create(ctx, t); err != nil {
		return nil, storeErr(err, "create financial task")
	}
	return t, nil
}

func (s *financialService) List(ctx context.Context, callerUID string) ([]*models.FinancialTask, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionFinanceView) {
		return nil, fmt.Errorf("%w: finances", ErrForbidden)
	}
	tasks, err := s.tasks.ListByOffice(ctx, caller.OfficeID)
	if err != nil {
		return nil, storeErr(err, "list financial tasks")
	}
	return tasks, nil
}

func (s *financialService) Update(ctx context.Context, callerUID, taskID string, req models.UpdateFinancialTaskRequest) (*models.FinancialTask, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionFinanceManage) {
		return nil, fmt.Errorf("%w: only the office master can manage finances", ErrForbidden)
	}

	t, err := s.getScoped(ctx, caller, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		t.Title = *req.Title
	}
	if req.Type != nil {
		typ, err := validFinancialType(*req.Type)
		if err != nil {
			return nil, err
		}
		t.Type = typ
	}
	if req.DueDate != nil {
		t.DueDate = *req.DueDate
	}
	if req.Value != nil {
		if *req.Value <= 0 {
			return nil, fmt.Errorf("%w: value must be positive", ErrInvalidInput)
		}
		t.Value = *req.Value
	}
	if req.ProcessID != nil {
		t.ProcessID = *req.ProcessID
	}

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, storeErr(err, "update financial task")
	}
	return t, nil
}

func (s *financialService) Delete(ctx context.Context, callerUID, taskID string) error {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return err
	}
	if !caller.Can(authz.ActionFinanceManage) {
		return fmt.Errorf("%w: only the office master can manage finances", ErrForbidden)
	}
	if _, err := s.getScoped(ctx, caller, taskID); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return storeErr(err, "delete financial task")
	}
	return nil
}

// ToggleStatus flips pendente<->pago. Secretaries keep this single
// write so they can reconcile payments without full finance access.
func (s *financialService) ToggleStatus(ctx context.Context, callerUID, taskID string) (*models.FinancialTask, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionFinanceToggle) {
		return nil, fmt.Errorf("%w: your role cannot toggle payment status", ErrForbidden)
	}

	t, err := s.getScoped(ctx, caller, taskID)
	if err != nil {
		return nil, err
	}

	if t.Status == models.FinancialPago {
		t.Status = models.FinancialPendente
	} else {
		t.Status = models.FinancialPago
	}
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, storeErr(err, "toggle financial task")
	}
	return t, nil
}
