package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pyscribe/internal/analyzer"
	"pyscribe/internal/report"
	"pyscribe/internal/types"
)

var severityColors = map[types.Severity]*color.Color{
	types.SeverityMedium:   color.New(color.FgYellow),
	types.SeverityHigh:     color.New(color.FgRed),
	types.SeverityCritical: color.New(color.FgRed, color.Bold),
}

// NewRootCommand creates and returns the root cobra command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pyscribe",
		Short: "Static quality analysis and LLM-assisted refactoring for Python",
		Long: `Pyscribe scans Python source trees for quality issues (missing
docstrings, overly long functions, deep nesting, syntax errors) and can
forward flagged files to an OpenAI-compatible model to produce a refactored
version with a summary of what changed.`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("path", "p", ".", "File or directory to analyze")
	cmd.Flags().StringP("config", "c", "", "Path to configuration file (optional)")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolP("refactor", "r", false, "Send flagged files to the model for refactoring")
	cmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	cmd.Flags().BoolP("write", "w", false, "Write refactored source back to disk (implies --refactor)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	refactor, _ := cmd.Flags().GetBool("refactor")
	format, _ := cmd.Flags().GetString("format")
	write, _ := cmd.Flags().GetBool("write")

	if write {
		refactor = true
	}

	a, err := analyzer.NewAnalyzer(verbose, refactor, configPath)
	if err != nil {
		return err
	}
	files, err := a.Analyze(cmd.Context(), path)
	if err != nil {
		return err
	}

	if write {
		if err := writeRefactored(files); err != nil {
			return err
		}
	}

	if format == "json" {
		return report.New(path, files).WriteJSON(cmd.OutOrStdout())
	}

	printResults(files, verbose)
	return nil
}

func printResults(files []analyzer.FileReport, verbose bool) {
	clean := 0
	for _, f := range files {
		if len(f.Issues) == 0 {
			clean++
			continue
		}

		fmt.Printf("%s\n", f.Path)
		for _, issue := range f.Issues {
			label := severityColors[issue.Severity].Sprintf("[%s]", issue.Severity)
			fmt.Printf("  %s %s (line %d): %s\n", label, issue.Type, issue.Line, issue.Describe())
		}
		if len(f.Changes) > 0 {
			fmt.Printf("  refactored: %s\n", strings.Join(f.Changes, "; "))
		}
		if f.Error != "" {
			fmt.Printf("  refactor failed: %s\n", f.Error)
		}
	}

	if verbose {
		fmt.Printf("%d files analyzed, %d clean\n", len(files), clean)
	}
}

func writeRefactored(files []analyzer.FileReport) error {
	for _, f := range files {
		if f.Refactored == "" {
			continue
		}
		if err := os.WriteFile(f.Path, []byte(f.Refactored), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
	}
	return nil
}
