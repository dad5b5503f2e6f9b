package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careercraft/careercraft/internal/api"
)

func TestPrintJobListings(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobListings([]api.JobListing{{
		Title:      "Software Engineer",
		Company:    "Acme",
		Type:       "Full-time",
		Experience: "Senior",
		Salary:     "R400000 - R600000",
		Posted:     "Sat Aug 15 2026",
		URL:        "https://jobs.example/1",
	}})

	out := buf.String()
	assert.Contains(t, out, "Software Engineer")
	assert.Contains(t, out, "Company:    Acme")
	assert.Contains(t, out, "Salary:     R400000 - R600000")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintJobListings_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobListings(nil)
	assert.Contains(t, buf.String(), "No results")
}

func TestPrintJobListings_TruncatesDescription(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobListings([]api.JobListing{{Title: "T", Description: string(long)}})
	assert.Contains(t, buf.String(), "...")
}

func TestPrintDocuments(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocuments([]api.Document{
		{Filename: "cv.pdf", Size: 2048, UploadedAt: "2026-08-01T10:00:00Z"},
	})
	out := buf.String()
	assert.Contains(t, out, "DOCUMENTS")
	assert.Contains(t, out, "cv.pdf")
	assert.Contains(t, out, "2048 bytes")
}

func TestPrintDocuments_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocuments(nil)
	assert.Contains(t, buf.String(), "No documents uploaded yet")
}

func TestPrintTrackedJobs(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTrackedJobs([]api.TrackedJob{
		{ID: 7, Title: "SE", Company: "Acme", Status: "Interview-05/09/26"},
	})
	out := buf.String()
	assert.Contains(t, out, "TRACKED APPLICATIONS")
	assert.Contains(t, out, "#7")
	assert.Contains(t, out, "Interview-05/09/26")
}
