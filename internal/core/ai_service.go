package core

import (
	"context"
	"fmt"

	"jusgestor-backend-go/internal/ai"
	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/db"
	"jusgestor-backend-go/internal/models"
)

// aiService gates the generative features behind the policy table and
// resolves which API key to use: the office's own key when the master
// configured one, otherwise the server-wide default.
type aiService struct {
	offices    db.OfficeRepository
	processes  db.ProcessRepository
	generator  ai.Generator
	resolver   *IdentityResolver
	defaultKey string
}

// NewAIService creates an AIService. defaultKey may be empty, in which
// case offices without their own key get ErrInvalidInput.
func NewAIService(
	offices db.OfficeRepository,
	processes db.ProcessRepository,
	generator ai.Generator,
	resolver *IdentityResolver,
	defaultKey string,
) AIService {
	return &aiService{
		offices:    offices,
		processes:  processes,
		generator:  generator,
		resolver:   resolver,
		defaultKey: defaultKey,
	}
}

func (s *aiService) apiKeyFor(ctx context.Context, officeID string) (string, error) {
	office, err := s.offices.GetByID(ctx, officeID)
	if err != nil {
		return "", storeErr(err, "office")
	}
	key := office.GeminiAPIKey
	if key == "" {
		key = s.defaultKey
	}
	if key == "" {
		return "", fmt.Errorf("%w: no generative API key is configured for this office", ErrInvalidInput)
	}
	return key, nil
}

func (s *aiService) DraftPetition(ctx context.Context, callerUID string, in ai.PetitionInput) (ai.PetitionOutput, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return ai.PetitionOutput{}, err
	}
	if !caller.Can(authz.ActionAIPetition) {
		return ai.PetitionOutput{}, fmt.Errorf("%w: your role cannot draft petitions", ErrForbidden)
	}
	key, err := s.apiKeyFor(ctx, caller.OfficeID)
	if err != nil {
		return ai.PetitionOutput{}, err
	}
	return ai.DraftPetition(ctx, s.generator, key, in)
}

// SimulateStatusUpdate generates the next plausible movement for a
// process the caller may see and appends it to the movement log.
func (s *aiService) SimulateStatusUpdate(ctx context.Context, callerUID, processID string) (*models.Movement, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionAIStatus) {
		return nil, fmt.Errorf("%w: your role cannot simulate status updates", ErrForbidden)
	}

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

	key, err := s.apiKeyFor(ctx, caller.OfficeID)
	if err != nil {
		return nil, err
	}

	in := ai.StatusInput{
		ProcessNumber: p.ProcessNumber,
		Court:         p.Court,
		CurrentStatus: string(p.Status),
	}
	if n := len(p.Movements); n > 0 {
		in.LastUpdate = p.Movements[n-1].Description
	}

	out, err := ai.SimulateStatusUpdate(ctx, s.generator, key, in)
	if err != nil {
		return nil, err
	}

	m := models.Movement{Date: out.Date, Description: out.Description, Details: out.Details}
	if err := s.processes.AppendMovement(ctx, processID, m); err != nil {
		return nil, storeErr(err, "append movement")
	}
	return &m, nil
}

func (s *aiService) SummarizeBrief(ctx context.Context, callerUID string, in ai.SummaryInput) (ai.SummaryOutput, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return ai.SummaryOutput{}, err
	}
	if !caller.Can(authz.ActionAISummary) {
		return ai.SummaryOutput{}, fmt.Errorf("%w: your role cannot summarize documents", ErrForbidden)
	}
	key, err := s.apiKeyFor(ctx, caller.OfficeID)
	if err != nil {
		return ai.SummaryOutput{}, err
	}
	return ai.SummarizeBrief(ctx, s.generator, key, in)
}
