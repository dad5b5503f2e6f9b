package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/careercraft/careercraft/internal/draft"
	"github.com/careercraft/careercraft/internal/tui"
	"github.com/careercraft/careercraft/internal/wizard"
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Open the CV builder wizard",
	Long:  "Open the multi-step CV builder. Drafts autosave on every edit and survive restarts; the final step previews and downloads the rendered PDF.",
	RunE:  runCV,
}

func init() {
	rootCmd.AddCommand(cvCmd)
}

func runCV(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	session := wizard.NewSession(draft.CV, app.store, app.client, nil)
	defer session.Close()

	// Hydration failures surface as notifications; the builder still opens.
	_ = session.Hydrate(ctx)

	program := tea.NewProgram(tui.New(session), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
