package ai

import (
	"context"
	"fmt"
)

// PetitionInput is the fixed input schema of the petition-draft adapter.
type PetitionInput struct {
	CaseFacts    string `json:"caseFacts" binding:"required"`
	PetitionType string `json:"petitionType" binding:"required"`
	LegalThesis  string `json:"legalThesis" binding:"required"`
	ToneAndStyle string `json:"toneAndStyle"`
	ClientInfo   string `json:"clientInfo"`
	OpponentInfo string `json:"opponentInfo"`
}

// Validate checks the required fields of the schema.
func (in PetitionInput) Validate() error {
	if in.CaseFacts == "" {
		return fmt.Errorf("%w: caseFacts is required", ErrInvalidInput)
	}
	if in.PetitionType == "" {
		return fmt.Errorf("%w: petitionType is required", ErrInvalidInput)
	}
	if in.LegalThesis == "" {
		return fmt.Errorf("%w: legalThesis is required", ErrInvalidInput)
	}
	return nil
}

// PetitionOutput is the fixed output schema of the petition-draft
// adapter.
type PetitionOutput struct {
	DraftContent string `json:"draftContent"`
}

func buildPetitionPrompt(in PetitionInput) string {
	tone := in.ToneAndStyle
	if tone == "" {
		tone = "formal e técnico"
	}
	return fmt.Sprintf(`Você é um advogado brasileiro experiente redigindo uma peça processual.

Tipo de petição: %s
Tese jurídica: %s
Tom e estilo: %s
Dados do cliente: %s
Dados da parte contrária: %s

Fatos do caso:
%s

Redija a minuta completa da petição em português, pronta para revisão,
sem comentários fora do corpo da peça.`,
		in.PetitionType, in.LegalThesis, tone, in.ClientInfo, in.OpponentInfo, in.CaseFacts)
}

// DraftPetition validates the input, renders the petition prompt and
// performs one generation call.
func DraftPetition(ctx context.Context, g Generator, apiKey string, in PetitionInput) (PetitionOutput, error) {
	if err := in.Validate(); err != nil {
		return PetitionOutput{}, err
	}
	text, err := g.Generate(ctx, apiKey, buildPetitionPrompt(in))
	if err != nil {
		return PetitionOutput{}, err
	}
	return PetitionOutput{DraftContent: text}, nil
}
