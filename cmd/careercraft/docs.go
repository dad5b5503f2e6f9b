package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/careercraft/careercraft/internal/observability"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage uploaded documents",
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded documents",
	RunE:  runDocsList,
}

var docsUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsUpload,
}

var docsDownloadOut string

var docsDownloadCmd = &cobra.Command{
	Use:   "download <filename>",
	Short: "Download an uploaded document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsDownload,
}

var docsDeleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete an uploaded document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsDelete,
}

func init() {
	docsDownloadCmd.Flags().StringVarP(&docsDownloadOut, "output", "o", "", "Output path (default: original filename)")
	docsCmd.AddCommand(docsListCmd, docsUploadCmd, docsDownloadCmd, docsDeleteCmd)
	rootCmd.AddCommand(docsCmd)
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()
	if err := app.requireAuth(); err != nil {
		return err
	}

	docs, err := app.client.ListDocuments(ctx)
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintDocuments(docs)
	return nil
}

func runDocsUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()
	if err := app.requireAuth(); err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	if err := app.client.UploadDocument(ctx, filepath.Base(args[0]), f); err != nil {
		return err
	}
	fmt.Printf("Uploaded %s\n", filepath.Base(args[0]))
	return nil
}

func runDocsDownload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()
	if err := app.requireAuth(); err != nil {
		return err
	}

	data, err := app.client.DownloadDocument(ctx, args[0])
	if err != nil {
		return err
	}
	out := docsDownloadOut
	if out == "" {
		out = args[0]
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Printf("Saved %s\n", out)
	return nil
}

func runDocsDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()
	if err := app.requireAuth(); err != nil {
		return err
	}

	if err := app.client.DeleteDocument(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}
