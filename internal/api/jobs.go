package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// JobListing is a search result flattened for display: missing fields get
// the same fallbacks the web UI shows.
type JobListing struct {
	ID          string
	Title       string
	Company     string
	Type        string
	Experience  string
	Salary      string
	Description string
	Posted      string
	Source      string
	URL         string
}

// rawJobListing matches the search endpoint's upstream (Adzuna-shaped)
// response objects.
type rawJobListing struct {
	ID      any    `json:"id"`
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	ContractType    string   `json:"contract_type"`
	ExperienceLevel string   `json:"experience_level"`
	SalaryMin       *float64 `json:"salary_min"`
	SalaryMax       *float64 `json:"salary_max"`
	Description     string   `json:"description"`
	Created         string   `json:"created"`
	RedirectURL     string   `json:"redirect_url"`
}

// SearchJobs queries the job search endpoint by title and optional
// location, and flattens the results. Type and experience filtering is
// done client side by the caller.
func (c *Client) SearchJobs(ctx context.Context, title, location string) ([]JobListing, error) {
	path := fmt.Sprintf("/api/jobs/search?title=%s&location=%s",
		url.QueryEscape(title), url.QueryEscape(location))

	var raw []rawJobListing
	if err := c.doJSON(ctx, "search jobs", http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	jobs := make([]JobListing, 0, len(raw))
	for i, r := range raw {
		job := JobListing{
			ID:          listingID(r.ID, i),
			Title:       r.Title,
			Company:     r.Company.DisplayName,
			Type:        r.ContractType,
			Experience:  r.ExperienceLevel,
			Salary:      "Not specified",
			Description: r.Description,
			Posted:      "N/A",
			Source:      "Adzuna",
			URL:         r.RedirectURL,
		}
		if job.Company == "" {
			job.Company = "N/A"
		}
		if job.Type == "" {
			job.Type = "Full-time"
		}
		if job.Experience == "" {
			job.Experience = "Junior"
		}
		if r.SalaryMin != nil && r.SalaryMax != nil {
			job.Salary = fmt.Sprintf("R%.0f - R%.0f", *r.SalaryMin, *r.SalaryMax)
		}
		if r.Description == "" {
			job.Description = "No description"
		}
		if t, err := time.Parse(time.RFC3339, r.Created); err == nil {
			job.Posted = t.Format("Mon Jan 2 2006")
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// listingID flattens the upstream id, falling back to the listing's index
// for a missing, zero or empty id, like the web UI does.
func listingID(raw any, index int) string {
	switch v := raw.(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		if v != 0 {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return strconv.Itoa(index)
}

// TrackJobRequest is the payload recorded when the user applies to a
// listing; profile fields come from the cached personalInfo.
type TrackJobRequest struct {
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location,omitempty"`
	Experience string `json:"experience,omitempty"`
	JobType    string `json:"job_type,omitempty"`
	Salary     string `json:"salary,omitempty"`
	Source     string `json:"source,omitempty"`
	URL        string `json:"url"`
}

// TrackJob records an application. Requires a token.
func (c *Client) TrackJob(ctx context.Context, req *TrackJobRequest) error {
	if c.token == "" {
		return ErrNoToken
	}
	return c.doJSON(ctx, "track job", http.MethodPost, "/api/jobs/track", req, nil)
}

// TrackedJob is one row on the application-tracking screen.
type TrackedJob struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Status   string `json:"status"`
	URL      string `json:"url"`
}

// ListTrackedJobs returns the user's tracked applications.
func (c *Client) ListTrackedJobs(ctx context.Context, username string) ([]TrackedJob, error) {
	path := "/api/jobs?username=" + url.QueryEscape(username)
	var jobs []TrackedJob
	if err := c.doJSON(ctx, "list tracked jobs", http.MethodGet, path, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateJobStatus patches a tracked application's status.
func (c *Client) UpdateJobStatus(ctx context.Context, id int64, status string) error {
	path := fmt.Sprintf("/api/jobs/tracked/%d?status=%s", id, url.QueryEscape(status))
	return c.doJSON(ctx, "update job status", http.MethodPatch, path, nil, nil)
}

// InterviewStatus builds the Interview status value with its DD/MM/YY
// interview date suffix.
func InterviewStatus(date time.Time) string {
	return fmt.Sprintf("Interview-%02d/%02d/%s", date.Day(), int(date.Month()), date.Format("06"))
}
