package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/careercraft/careercraft/internal/api"
	"github.com/careercraft/careercraft/internal/store"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the auth token",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	token, err := app.client.Login(ctx, &api.LoginRequest{
		Username: loginUsername,
		Password: loginPassword,
	})
	if err != nil {
		return err
	}
	if err := app.store.Set(ctx, store.KeyToken, []byte(token)); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	// Cache the profile so the builders and job tracking can merge it in.
	profile, err := app.client.FetchProfile(ctx)
	if err != nil {
		log.Printf("[login] could not fetch profile: %v", err)
	} else if data, err := json.Marshal(profile); err == nil {
		if err := app.store.Set(ctx, store.KeyPersonalInfo, data); err != nil {
			log.Printf("[login] could not cache profile: %v", err)
		}
	}

	fmt.Println("Logged in.")
	return nil
}
