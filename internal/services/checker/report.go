package checker

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/archon-research/txcheck/internal/domain/entity"
)

// Report represents the complete result of a verification run.
type Report struct {
	// StartTime is when the run started.
	StartTime time.Time `json:"start_time"`

	// EndTime is when the run completed.
	EndTime time.Time `json:"end_time"`

	// Duration is the total run duration.
	Duration time.Duration `json:"duration"`

	// Results contains the per-transaction outcomes in input order.
	Results []entity.CheckResult `json:"results"`

	// Summary counters. HTTP errors other than 200/422 are recorded in
	// Results but deliberately not tallied here, matching the reporting
	// behavior this tool replaces.
	Success         int      `json:"success"`
	NotFound        []string `json:"not_found"`
	TransportErrors int      `json:"transport_errors"`
}

// NewReport creates a new empty report.
func NewReport() *Report {
	return &Report{
		StartTime: time.Now(),
		Results:   make([]entity.CheckResult, 0),
		NotFound:  make([]string, 0),
	}
}

// AddResult folds a check result into the report.
func (r *Report) AddResult(result entity.CheckResult) {
	r.Results = append(r.Results, result)
	switch result.Status {
	case entity.StatusFound:
		r.Success++
	case entity.StatusNotFound:
		r.NotFound = append(r.NotFound, result.TransactionID)
	case entity.StatusTransportError:
		r.TransportErrors++
	}
}

// Finalize completes the report with end time and duration.
func (r *Report) Finalize() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
}

// notFoundFileHeader is the fixed two-line header of the not-found output file.
const notFoundFileHeader = "Not Found Transaction Numbers:\n" +
	"==============================\n"

// NotFoundFileContents renders the not-found output file body: the two-line
// header followed by one identifier per line.
func (r *Report) NotFoundFileContents() string {
	var sb strings.Builder
	sb.WriteString(notFoundFileHeader)
	for _, transactionID := range r.NotFound {
		sb.WriteString(transactionID)
		sb.WriteString("\n")
	}
	return sb.String()
}

// WriteNotFoundFile writes the not-found identifiers to the given path.
// No file is created when the not-found list is empty; the first return
// value reports whether a file was written.
func (r *Report) WriteNotFoundFile(path string) (bool, error) {
	if len(r.NotFound) == 0 {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(r.NotFoundFileContents()), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// FormatText returns the report as human-readable text.
func (r *Report) FormatText() string {
	var sb strings.Builder

	sb.WriteString("============================================================\n")
	sb.WriteString("              TRANSACTION VERIFICATION REPORT\n")
	sb.WriteString("============================================================\n")
	sb.WriteString(fmt.Sprintf("Checked:  %d transactions\n", len(r.Results)))
	sb.WriteString(fmt.Sprintf("Duration: %s\n\n", formatDuration(r.Duration)))

	sb.WriteString(fmt.Sprintf("SUMMARY: %d found, %d not found (422), %d errors\n",
		r.Success, len(r.NotFound), r.TransportErrors))

	if len(r.NotFound) > 0 {
		sb.WriteString("\nNot found:\n")
		for _, transactionID := range r.NotFound {
			sb.WriteString(fmt.Sprintf("  %s\n", transactionID))
		}
	}

	return sb.String()
}

// FormatJSON returns the report as JSON.
func (r *Report) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	return string(data), nil
}

// formatDuration formats a duration for human readability.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d.Milliseconds()))
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
