package core

import (
	"context"
	"fmt"
	"strings"

	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/db"
	"jusgestor-backend-go/internal/models"
)

// clientService implements ClientService.
type clientService struct {
	clients  db.ClientRepository
	resolver *IdentityResolver
}

// NewClientService creates a ClientService.
func NewClientService(clients db.ClientRepository, resolver *IdentityResolver) ClientService {
	return &clientService{clients: clients, resolver: resolver}
}

// getScoped fetches a client and enforces the office boundary. A
// client from another office surfaces as not-found, never as
// forbidden.
func (s *clientService) getScoped(ctx context.Context, caller Identity, clientID string) (*models.Client, error) {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, storeErr(err, "client")
	}
	if client.OfficeID != caller.OfficeID {
		return nil, fmt.Errorf("%w: client", ErrNotFound)
	}
	return client, nil
}

func (s *clientService) Create(ctx context.Context, callerUID string, req models.CreateClientRequest) (*models.Client, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionClientCreate) {
		return nil, fmt.Errorf("%w: your role cannot create clients", ErrForbidden)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	client := &models.Client{
		Name:      req.Name,
		CPF:       req.CPF,
		RG:        req.RG,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Notes:     req.Notes,
		OfficeID:  caller.OfficeID,
		CreatedBy: caller.UID,
	}
	if _, err := s.clients.Create(ctx, client); err != nil {
		return nil, storeErr(err, "create client")
	}
	return client, nil
}

func (s *clientService) Get(ctx context.Context, callerUID, clientID string) (*models.Client, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionClientView) {
		return nil, fmt.Errorf("%w: clients", ErrForbidden)
	}
	return s.getScoped(ctx, caller, clientID)
}

func (s *clientService) List(ctx context.Context, callerUID string) ([]*models.Client, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionClientView) {
		return nil, fmt.Errorf("%w: clients", ErrForbidden)
	}

	clients, err := s.clients.ListByOffice(ctx, caller.OfficeID)
	if err != nil {
		return nil, storeErr(err, "list clients")
	}
	return clients, nil
}

func (s *clientService) Update(ctx context.Context, callerUID, clientID string, req models.UpdateClientRequest) (*models.Client, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionClientUpdate) {
		return nil, fmt.Errorf("%w: your role cannot update clients", ErrForbidden)
	}

	client, err := s.getScoped(ctx, caller, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: client name cannot be empty", ErrInvalidInput)
		}
		client.Name = *req.Name
	}
	if req.CPF != nil {
		client.CPF = *req.CPF
	}
	if req.RG != nil {
		client.RG = *req.RG
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, storeErr(err, "update client")
	}
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, callerUID, clientID string) error {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return err
	}
	if !caller.Can(authz.ActionClientDelete) {
		return fmt.Errorf("%w: only the office master can delete clients", ErrForbidden)
	}

	if _, err := s.getScoped(ctx, caller, clientID); err != nil {
		return err
	}
	if err := s.clients.Delete(ctx, clientID); err != nil {
		return storeErr(err, "delete client")
	}
	return nil
}
