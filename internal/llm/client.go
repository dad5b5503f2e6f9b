// Package llm provides direct Gemini generation for cover-letter bodies,
// used instead of the backend's AI endpoint when an API key is configured.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/careercraft/careercraft/internal/draft"
)

// DefaultModel is the Gemini model used for letter generation.
const DefaultModel = "gemini-1.5-flash"

// Generator writes cover-letter bodies with Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a Gemini-backed generator.
func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llm: API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("llm: create Gemini client: %w", err)
	}
	return &Generator{client: client, model: model}, nil
}

// GenerateBody writes a cover-letter body from the draft context and the
// user's instruction. It matches the backend endpoint's contract: the
// returned text replaces the letter_body field wholesale.
func (g *Generator) GenerateBody(ctx context.Context, d draft.Draft, instruction string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(d, instruction)))
	if err != nil {
		return "", fmt.Errorf("llm: generate letter body: %w", err)
	}
	return extractText(resp)
}

// Close releases the underlying client.
func (g *Generator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// buildPrompt assembles the generation prompt from the non-empty draft
// fields and the user's instruction.
func buildPrompt(d draft.Draft, instruction string) string {
	var sb strings.Builder
	sb.WriteString("Write the body of a professional cover letter. ")
	sb.WriteString("Return only the letter body text, no salutation or signature blocks.\n\n")
	sb.WriteString("Candidate and recipient details:\n")
	for _, f := range d.Shape().Fields {
		if f.Name == "letter_body" {
			continue
		}
		v, ok := d.Value(f.Name)
		if !ok || !v.Filled() {
			continue
		}
		if f.Kind == draft.KindList {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", f.Name, strings.Join(v.Items(), ", ")))
		} else {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", f.Name, v.Str()))
		}
	}
	sb.WriteString("\nInstruction from the candidate:\n")
	sb.WriteString(instruction)
	return sb.String()
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("llm: empty response")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("llm: response contained no text")
	}
	return out, nil
}
