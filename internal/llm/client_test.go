package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercraft/careercraft/internal/draft"
)

func TestNewGenerator_RequiresKey(t *testing.T) {
	_, err := NewGenerator(context.Background(), "", "")
	assert.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	d := draft.New(draft.CoverLetter)
	d, err := d.Set("full_name", draft.String("Jane Doe"))
	require.NoError(t, err)
	d, err = d.Set("recipient_company", draft.String("Acme"))
	require.NoError(t, err)
	d, err = d.Set("letter_body", draft.String("previous body"))
	require.NoError(t, err)

	prompt := buildPrompt(d, "keep it under 200 words")

	assert.Contains(t, prompt, "full_name: Jane Doe")
	assert.Contains(t, prompt, "recipient_company: Acme")
	assert.Contains(t, prompt, "keep it under 200 words")
	assert.NotContains(t, prompt, "previous body", "the old body never leaks into the prompt")
	assert.NotContains(t, prompt, "phone:", "empty fields are omitted")
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("Dear "), genai.Text("Hiring Manager,")},
			},
		}},
	}
	text, err := extractText(resp)
	require.NoError(t, err)
	assert.Equal(t, "Dear Hiring Manager,", text)
}

func TestExtractText_Empty(t *testing.T) {
	_, err := extractText(nil)
	assert.Error(t, err)

	_, err = extractText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = extractText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	})
	assert.Error(t, err)
}
