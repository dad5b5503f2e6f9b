// Package observability provides formatted output utilities for the CLI's
// non-interactive screens.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/careercraft/careercraft/internal/api"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxDescriptionLen truncates long job descriptions in list output
	maxDescriptionLen = 120
)

// Printer handles formatted output for list screens
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobListings outputs search results, one box per listing.
func (p *Printer) PrintJobListings(jobs []api.JobListing) {
	if len(jobs) == 0 {
		p.printBox("JOB SEARCH", "No results")
		return
	}
	for _, job := range jobs {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Company:    %s\n", job.Company))
		sb.WriteString(fmt.Sprintf("Type:       %s\n", job.Type))
		sb.WriteString(fmt.Sprintf("Experience: %s\n", job.Experience))
		sb.WriteString(fmt.Sprintf("Salary:     %s\n", job.Salary))
		sb.WriteString(fmt.Sprintf("Posted:     %s\n", job.Posted))
		sb.WriteString(fmt.Sprintf("URL:        %s\n", job.URL))
		desc := job.Description
		if len(desc) > maxDescriptionLen {
			desc = desc[:maxDescriptionLen-3] + "..."
		}
		sb.WriteString(desc)
		p.printBox(job.Title, sb.String())
	}
}

// PrintDocuments outputs the uploaded-documents list.
func (p *Printer) PrintDocuments(docs []api.Document) {
	if len(docs) == 0 {
		p.printBox("DOCUMENTS", "No documents uploaded yet")
		return
	}
	var sb strings.Builder
	for _, d := range docs {
		sb.WriteString(fmt.Sprintf("%-40s %10d bytes  %s\n", d.Filename, d.Size, d.UploadedAt))
	}
	p.printBox("DOCUMENTS", strings.TrimRight(sb.String(), "\n"))
}

// PrintTrackedJobs outputs the application-tracking list.
func (p *Printer) PrintTrackedJobs(jobs []api.TrackedJob) {
	if len(jobs) == 0 {
		p.printBox("TRACKED APPLICATIONS", "No tracked applications")
		return
	}
	var sb strings.Builder
	for _, j := range jobs {
		sb.WriteString(fmt.Sprintf("#%-5d %-28s %-20s %s\n", j.ID, j.Title, j.Company, j.Status))
	}
	p.printBox("TRACKED APPLICATIONS", strings.TrimRight(sb.String(), "\n"))
}
