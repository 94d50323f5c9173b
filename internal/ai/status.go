package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// StatusInput is the fixed input schema of the status-simulation
// adapter. The fields come straight off the process document.
type StatusInput struct {
	ProcessNumber string `json:"processNumber" binding:"required"`
	Court         string `json:"court"`
	CurrentStatus string `json:"currentStatus"`
	LastUpdate    string `json:"lastUpdate"`
}

// Validate checks the required fields of the schema.
func (in StatusInput) Validate() error {
	if in.ProcessNumber == "" {
		return fmt.Errorf("%w: processNumber is required", ErrInvalidInput)
	}
	return nil
}

// StatusOutput is the fixed output schema of the status-simulation
// adapter: one plausible next procedural movement.
type StatusOutput struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Details     string `json:"details"`
}

func buildStatusPrompt(in StatusInput) string {
	return fmt.Sprintf(`Você é um sistema de acompanhamento processual. Gere a próxima
movimentação plausível para o processo abaixo.

Número do processo: %s
Tribunal/Vara: %s
Situação atual: %s
Última movimentação: %s

Responda somente com um objeto JSON com exatamente estes campos:
{"date": "<data ISO8601>", "description": "<descrição curta>", "details": "<detalhes>"}`,
		in.ProcessNumber, in.Court, in.CurrentStatus, in.LastUpdate)
}

// stripCodeFence removes a surrounding markdown code fence, which the
// model frequently wraps JSON answers in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// SimulateStatusUpdate validates the input, asks the model for the
// next movement and parses the structured answer. A response that is
// not the expected JSON object is a generation failure, not a parse
// error the caller needs to understand.
func SimulateStatusUpdate(ctx context.Context, g Generator, apiKey string, in StatusInput) (StatusOutput, error) {
	if err := in.Validate(); err != nil {
		return StatusOutput{}, err
	}

	text, err := g.Generate(ctx, apiKey, buildStatusPrompt(in))
	if err != nil {
		return StatusOutput{}, err
	}

	var out StatusOutput
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &out); err != nil {
		return StatusOutput{}, fmt.Errorf("%w: malformed provider response", ErrGenerationFailed)
	}
	if out.Description == "" {
		return StatusOutput{}, fmt.Errorf("%w: provider response missing description", ErrGenerationFailed)
	}
	if out.Date == "" {
		out.Date = time.Now().UTC().Format(time.RFC3339)
	}
	return out, nil
}
