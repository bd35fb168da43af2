package analyzer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pyscribe/internal/config"
	"pyscribe/internal/diff"
	"pyscribe/internal/llm"
	"pyscribe/internal/rules"
	"pyscribe/internal/types"
)

// directories never descended into when walking a project tree
var skipDirs = map[string]bool{
	"__pycache__":  true,
	"venv":         true,
	"node_modules": true,
	"vendor":       true,
	"build":        true,
	"dist":         true,
}

const defaultWorkers = 4

// Analyzer scans Python files for quality issues and optionally forwards
// flagged files to the model for refactoring.
type Analyzer struct {
	verbose  bool
	refactor bool
	scanner  *rules.Scanner
	client   *llm.Client
	workers  int
}

// FileReport is the per-file analysis result
type FileReport struct {
	Path       string        `json:"path"`
	Issues     []types.Issue `json:"issues"`
	Refactored string        `json:"-"`
	Changes    []string      `json:"changes,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// NewAnalyzer creates a new analyzer instance
func NewAnalyzer(verbose, refactor bool, configPath string) (*Analyzer, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	scanner := rules.NewScanner()
	scanner.ApplyConfig(cfg)

	client := llm.NewClient(llm.Config{
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		APIKey:  cfg.APIKey(),
		Timeout: time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
	})

	return &Analyzer{
		verbose:  verbose,
		refactor: refactor,
		scanner:  scanner,
		client:   client,
		workers:  defaultWorkers,
	}, nil
}

// Analyze scans every Python file under root (or root itself when it is a
// file). Files are processed with bounded parallelism; the scanner holds no
// shared state, so no coordination between files is needed. A file that
// fails to parse reports its one critical issue without aborting the batch.
func (a *Analyzer) Analyze(ctx context.Context, root string) ([]FileReport, error) {
	files, err := collectPythonFiles(root)
	if err != nil {
		return nil, err
	}

	reports := make([]FileReport, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			rep, err := a.analyzeFile(ctx, path)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (a *Analyzer) analyzeFile(ctx context.Context, path string) (FileReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileReport{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rep := FileReport{
		Path:   path,
		Issues: a.scanner.Scan(data),
	}

	if !a.refactor || len(rep.Issues) == 0 || hasSyntaxError(rep.Issues) {
		return rep, nil
	}

	refactored, err := a.client.Refactor(ctx, string(data), rep.Issues)
	if err != nil {
		// A failed model call degrades the report, not the batch.
		rep.Error = err.Error()
		return rep, nil
	}

	rep.Refactored = refactored
	rep.Changes = diff.Summarize(string(data), refactored)

	return rep, nil
}

func hasSyntaxError(issues []types.Issue) bool {
	for _, issue := range issues {
		if issue.Type == types.KindSyntaxError {
			return true
		}
	}
	return false
}

// collectPythonFiles returns the .py files under root in walk order,
// skipping hidden and generated directories. A root that is itself a file
// is returned as-is.
func collectPythonFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		name := filepath.Base(path)
		if info.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(name, ".py") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
