package report

import (
	"encoding/json"
	"io"
	"time"

	"pyscribe/internal/analyzer"
	"pyscribe/internal/types"
)

// Report is the aggregate analysis output for one run.
type Report struct {
	Root        string                `json:"root"`
	GeneratedAt time.Time             `json:"generated_at"`
	Summary     Summary               `json:"summary"`
	Files       []analyzer.FileReport `json:"files"`
}

// Summary contains aggregated statistics
type Summary struct {
	TotalFiles  int                    `json:"total_files"`
	TotalIssues int                    `json:"total_issues"`
	BySeverity  map[types.Severity]int `json:"by_severity"`
	ByType      map[types.Kind]int     `json:"by_type"`
}

// New builds a report with summary counts from per-file results.
func New(root string, files []analyzer.FileReport) *Report {
	summary := Summary{
		TotalFiles: len(files),
		BySeverity: make(map[types.Severity]int),
		ByType:     make(map[types.Kind]int),
	}

	for _, f := range files {
		summary.TotalIssues += len(f.Issues)
		for _, issue := range f.Issues {
			summary.BySeverity[issue.Severity]++
			summary.ByType[issue.Type]++
		}
	}

	return &Report{
		Root:        root,
		GeneratedAt: time.Now().UTC(),
		Summary:     summary,
		Files:       files,
	}
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
