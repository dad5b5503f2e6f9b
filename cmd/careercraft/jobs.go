package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/careercraft/careercraft/internal/api"
	"github.com/careercraft/careercraft/internal/observability"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search job listings and track applications",
}

var (
	jobsSearchTitle      string
	jobsSearchLocation   string
	jobsSearchType       string
	jobsSearchExperience string
)

var jobsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search job listings",
	RunE:  runJobsSearch,
}

var trackReq api.TrackJobRequest

var jobsTrackCmd = &cobra.Command{
	Use:   "track",
	Short: "Record an application for a listing",
	RunE:  runJobsTrack,
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked applications",
	RunE:  runJobsList,
}

var jobsStatusDate string

var jobsStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Update a tracked application's status",
	Long:  "Update a tracked application's status (Applied, Interview, Offer, Rejected). An Interview status takes --date and records it with the status.",
	Args:  cobra.ExactArgs(2),
	RunE:  runJobsStatus,
}

func init() {
	jobsSearchCmd.Flags().StringVar(&jobsSearchTitle, "title", "", "Job title to search for")
	jobsSearchCmd.Flags().StringVar(&jobsSearchLocation, "location", "", "Location filter")
	jobsSearchCmd.Flags().StringVar(&jobsSearchType, "type", "", "Contract type filter (client side)")
	jobsSearchCmd.Flags().StringVar(&jobsSearchExperience, "experience", "", "Experience level filter (client side)")
	_ = jobsSearchCmd.MarkFlagRequired("title")

	jobsTrackCmd.Flags().StringVar(&trackReq.Title, "title", "", "Listing title")
	jobsTrackCmd.Flags().StringVar(&trackReq.Company, "company", "", "Company name")
	jobsTrackCmd.Flags().StringVar(&trackReq.URL, "url", "", "Listing URL")
	jobsTrackCmd.Flags().StringVar(&trackReq.Location, "location", "", "Location")
	jobsTrackCmd.Flags().StringVar(&trackReq.Experience, "experience", "", "Experience level")
	jobsTrackCmd.Flags().StringVar(&trackReq.JobType, "type", "", "Contract type")
	jobsTrackCmd.Flags().StringVar(&trackReq.Salary, "salary", "", "Salary")
	jobsTrackCmd.Flags().StringVar(&trackReq.Source, "source", "", "Listing source")
	_ = jobsTrackCmd.MarkFlagRequired("title")
	_ = jobsTrackCmd.MarkFlagRequired("company")
	_ = jobsTrackCmd.MarkFlagRequired("url")

	jobsStatusCmd.Flags().StringVar(&jobsStatusDate, "date", "", "Interview date (YYYY-MM-DD), required for Interview status")

	jobsCmd.AddCommand(jobsSearchCmd, jobsTrackCmd, jobsListCmd, jobsStatusCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsSearch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	jobs, err := app.client.SearchJobs(ctx, jobsSearchTitle, jobsSearchLocation)
	if err != nil {
		return err
	}

	// Type and experience filters apply client side, like the web UI.
	filtered := jobs[:0]
	for _, job := range jobs {
		if jobsSearchType != "" && job.Type != jobsSearchType {
			continue
		}
		if jobsSearchExperience != "" && job.Experience != jobsSearchExperience {
			continue
		}
		filtered = append(filtered, job)
	}

	observability.NewPrinter(os.Stdout).PrintJobListings(filtered)
	return nil
}

func runJobsTrack(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()
	if err := app.requireAuth(); err != nil {
		return err
	}

	// Enrich the payload from the cached profile.
	info := app.personalInfo(ctx)
	trackReq.Username = profileString(info, "username")
	trackReq.Email = profileString(info, "email")
	trackReq.FullName = profileString(info, "full_name")
	if trackReq.Location == "" {
		trackReq.Location = profileString(info, "location")
	}

	if err := app.client.TrackJob(ctx, &trackReq); err != nil {
		return err
	}
	fmt.Printf("Tracking application for %s at %s\n", trackReq.Title, trackReq.Company)
	return nil
}

func runJobsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	username := profileString(app.personalInfo(ctx), "username")
	if username == "" {
		return fmt.Errorf("no cached profile, run 'careercraft login' first")
	}

	jobs, err := app.client.ListTrackedJobs(ctx, username)
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintTrackedJobs(jobs)
	return nil
}

func runJobsStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid application id %q", args[0])
	}

	status := args[1]
	if status == "Interview" {
		if jobsStatusDate == "" {
			return fmt.Errorf("Interview status requires --date")
		}
		date, err := time.Parse("2006-01-02", jobsStatusDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", jobsStatusDate)
		}
		status = api.InterviewStatus(date)
	}

	if err := app.client.UpdateJobStatus(ctx, id, status); err != nil {
		return err
	}
	fmt.Printf("Application %d marked %s\n", id, status)
	return nil
}
