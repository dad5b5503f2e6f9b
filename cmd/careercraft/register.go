package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careercraft/careercraft/internal/api"
)

var registerReq api.RegisterRequest

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().StringVarP(&registerReq.Username, "username", "u", "", "Account username")
	registerCmd.Flags().StringVarP(&registerReq.Password, "password", "p", "", "Account password")
	registerCmd.Flags().StringVar(&registerReq.FullName, "full-name", "", "Full name")
	registerCmd.Flags().StringVar(&registerReq.JobTitle, "job-title", "", "Job title")
	registerCmd.Flags().StringVar(&registerReq.Email, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerReq.Phone, "phone", "", "Phone number")
	registerCmd.Flags().StringVar(&registerReq.Location, "location", "", "Location")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.client.Register(ctx, &registerReq); err != nil {
		return err
	}
	fmt.Println("Account created successfully! Run 'careercraft login' to sign in.")
	return nil
}
