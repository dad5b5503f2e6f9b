package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careercraft/careercraft/internal/store"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear stored credentials",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := clearCredentials(ctx, app.store); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// clearCredentials removes the stored token and cached profile. Drafts are
// left alone; they belong to the machine, not the login.
func clearCredentials(ctx context.Context, st store.Store) error {
	if err := st.Delete(ctx, store.KeyToken); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	if err := st.Delete(ctx, store.KeyPersonalInfo); err != nil {
		return fmt.Errorf("failed to clear cached profile: %w", err)
	}
	return nil
}
