package ai

import (
	"context"
	"fmt"
	"strings"
)

// SummaryTone constrains the register of the generated summary.
type SummaryTone string

const (
	ToneFormal   SummaryTone = "formal"
	ToneInformal SummaryTone = "informal"
	ToneNeutral  SummaryTone = "neutral"
)

// SummaryInput is the fixed input schema of the brief-summary adapter.
type SummaryInput struct {
	DocumentText string      `json:"documentText" binding:"required"`
	Tone         SummaryTone `json:"tone"`
	FocusAreas   []string    `json:"focusAreas"`
}

// Validate checks the required fields and the tone enum.
func (in SummaryInput) Validate() error {
	if strings.TrimSpace(in.DocumentText) == "" {
		return fmt.Errorf("%w: documentText is required", ErrInvalidInput)
	}
	switch in.Tone {
	case "", ToneFormal, ToneInformal, ToneNeutral:
		return nil
	default:
		return fmt.Errorf("%w: tone must be formal, informal or neutral", ErrInvalidInput)
	}
}

// SummaryOutput is the fixed output schema of the brief-summary
// adapter.
type SummaryOutput struct {
	Summary string `json:"summary"`
}

func buildSummaryPrompt(in SummaryInput) string {
	tone := in.Tone
	if tone == "" {
		tone = ToneNeutral
	}
	focus := "os pontos principais"
	if len(in.FocusAreas) > 0 {
		focus = strings.Join(in.FocusAreas, ", ")
	}
	return fmt.Sprintf(`Resuma o documento jurídico abaixo em português, com tom %s,
destacando: %s.

Documento:
%s

Responda apenas com o resumo, sem preâmbulo.`, tone, focus, in.DocumentText)
}

// SummarizeBrief validates the input, renders the summary prompt and
// performs one generation call.
func SummarizeBrief(ctx context.Context, g Generator, apiKey string, in SummaryInput) (SummaryOutput, error) {
	if err := in.Validate(); err != nil {
		return SummaryOutput{}, err
	}
	text, err := g.Generate(ctx, apiKey, buildSummaryPrompt(in))
	if err != nil {
		return SummaryOutput{}, err
	}
	return SummaryOutput{Summary: text}, nil
}
