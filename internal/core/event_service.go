package core

import (
	"context"
	"fmt"
	"strings"

	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/db"
	"jusgestor-backend-go/internal/models"
)

type eventService struct {
	events   db.EventRepository
	users    db.UserRepository
	resolver *IdentityResolver
}

// NewEventService creates an EventService.
func NewEventService(events db.EventRepository, users db.UserRepository, resolver *IdentityResolver) EventService {
	return &eventService{events: events, users: users, resolver: resolver}
}

func (s *eventService) getScoped(ctx context.Context, caller Identity, eventID string) (*models.Event, error) {
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, storeErr(err, "event")
	}
	if e.OfficeID != caller.OfficeID {
		return nil, fmt.Errorf("%w: event", ErrNotFound)
	}
	return e, nil
}

func (s *eventService) Create(ctx context.Context, callerUID string, req models.CreateEventRequest) (*models.Event, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionEventCreate) {
		return nil, fmt.Errorf("%w: your role cannot create events", ErrForbidden)
	}

	typ := models.EventType(req.Type)
	if !models.ValidEventType(typ) {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, req.Type)
	}

	lawyerID := caller.UID
	if req.LawyerID != "" && req.LawyerID != caller.UID {
		if caller.Role != authz.RoleMaster {
			return nil, fmt.Errorf("%w: only the office master can assign events to another lawyer", ErrForbidden)
		}
		lawyer, err := s.users.GetByID(ctx, req.LawyerID)
		if err != nil {
			return nil, storeErr(err, "lawyer")
		}
		if lawyer.OfficeID != caller.OfficeID {
			return nil, fmt.Errorf("%w: lawyer", ErrNotFound)
		}
		lawyerID = lawyer.ID
	}

	e := &models.Event{
		Title:     req.Title,
		Date:      req.Date,
		Type:      typ,
		Status:    models.EventAgendada,
		OfficeID:  caller.OfficeID,
		LawyerID:  lawyerID,
		ProcessID: req.ProcessID,
		ClientID:  req.ClientID,
		Notes:     req.Notes,
	}
	if _, err := s.events.Create(ctx, e); err != nil {
		return nil, storeErr(err, "create event")
	}
	return e, nil
}

// EventFilter narrows a listing; zero values mean "no filter".
type EventFilter struct {
	LawyerID  string
	ProcessID string
}

func (f EventFilter) match(e *models.Event) bool {
	if f.LawyerID != "" && e.LawyerID != f.LawyerID {
		return false
	}
	if f.ProcessID != "" && e.ProcessID != f.ProcessID {
		return false
	}
	return true
}

func (s *eventService) List(ctx context.Context, callerUID string, filter EventFilter) ([]*models.Event, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionEventView) {
		return nil, fmt.Errorf("%w: events", ErrForbidden)
	}
	events, err := s.events.ListByOffice(ctx, caller.OfficeID)
	if err != nil {
		return nil, storeErr(err, "list events")
	}
	filtered := events[:0]
	for _, e := range events {
		if filter.match(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *eventService) Update(ctx context.Context, callerUID, eventID string, req models.UpdateEventRequest) (*models.Event, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionEventUpdate) {
		return nil, fmt.Errorf("%w: your role cannot update events", ErrForbidden)
	}

	e, err := s.getScoped(ctx, caller, eventID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		e.Title = *req.Title
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	if req.Type != nil {
		typ := models.EventType(*req.Type)
		if !models.ValidEventType(typ) {
			return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, *req.Type)
		}
		e.Type = typ
	}
	if req.Status != nil {
		switch models.EventStatus(*req.Status) {
		case models.EventAgendada, models.EventConfirmada, models.EventConcluida, models.EventCancelada:
			e.Status = models.EventStatus(*req.Status)
		default:
			return nil, fmt.Errorf("%w: unknown event status %q", ErrInvalidInput, *req.Status)
		}
	}
	if req.ProcessID != nil {
		e.ProcessID = *req.ProcessID
	}
	if req.ClientID != nil {
		e.ClientID = *req.ClientID
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}

	if err := s.events.Update(ctx, e); err != nil {
		return nil, storeErr(err, "update event")
	}
	return e, nil
}

func (s *eventService) Delete(ctx context.Context, callerUID, eventID string) error {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return err
	}
	if !caller.Can(authz.ActionEventDelete) {
		return fmt.Errorf("%w: your role cannot delete events", ErrForbidden)
	}
	if _, err := s.getScoped(ctx, caller, eventID); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, eventID); err != nil {
		return storeErr(err, "delete event")
	}
	return nil
}

// Confirm marks a hearing as confirmed. This is the single agenda write
// available to secretaries, and it only applies to hearings.
func (s *eventService) Confirm(ctx context.Context, callerUID, eventID string) (*models.Event, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionEventConfirm) {
		return nil, fmt.Errorf("%w: your role cannot confirm events", ErrForbidden)
	}

	e, err := s.getScoped(ctx, caller, eventID)
	if err != nil {
		return nil, err
	}
	if e.Type != models.EventAudiencia {
		return nil, fmt.Errorf("%w: only hearings can be confirmed", ErrInvalidInput)
	}

	e.Status = models.EventConfirmada
	if err := s.events.Update(ctx, e); err != nil {
		return nil, storeErr(err, "confirm event")
	}
	return e, nil
}
