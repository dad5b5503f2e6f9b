package main

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/careercraft/careercraft/internal/api"
	"github.com/careercraft/careercraft/internal/draft"
	"github.com/careercraft/careercraft/internal/llm"
	"github.com/careercraft/careercraft/internal/tui"
	"github.com/careercraft/careercraft/internal/wizard"
)

var letterCmd = &cobra.Command{
	Use:   "letter",
	Short: "Open the cover-letter builder wizard",
	Long:  "Open the multi-step cover-letter builder. The letter body can be written by hand or generated with AI; with GEMINI_API_KEY set, generation runs directly against Gemini instead of the backend.",
	RunE:  runLetter,
}

func init() {
	rootCmd.AddCommand(letterCmd)
}

// letterBackend routes AI generation to a local Gemini generator when one
// is configured, and to the backend endpoint otherwise. All other calls
// pass through to the API client.
type letterBackend struct {
	*api.Client
	gen *llm.Generator
}

func (b *letterBackend) GenerateBody(ctx context.Context, d draft.Draft, instruction string) (string, error) {
	if b.gen != nil {
		return b.gen.GenerateBody(ctx, d, instruction)
	}
	return b.Client.GenerateBody(ctx, d, instruction)
}

func runLetter(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	backend := &letterBackend{Client: app.client}
	if app.cfg.GeminiAPIKey != "" {
		gen, err := llm.NewGenerator(ctx, app.cfg.GeminiAPIKey, "")
		if err != nil {
			log.Printf("[letter] Gemini unavailable, using backend AI endpoint: %v", err)
		} else {
			backend.gen = gen
			defer func() { _ = gen.Close() }()
		}
	}

	session := wizard.NewSession(draft.CoverLetter, app.store, backend, nil)
	defer session.Close()

	_ = session.Hydrate(ctx)

	program := tea.NewProgram(tui.New(session), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
