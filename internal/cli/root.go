// Package cli provides the command-line interface for gh-seed.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/zabooya/gh-seed/internal/app"
)

// NewRootCommand creates the root command for gh-seed.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "gh-seed",
		Short: "Bulk-create GitHub issues from a YAML manifest",
		Long: `gh-seed reads a YAML manifest of issues and creates them on GitHub
through the gh CLI. Milestones and labels referenced by an issue are
created on the fly when missing, at most once per run.

A batch always runs to completion: one issue's failure never stops
the rest, and per-issue failures are reported in the summary rather
than via the exit status.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddCommand(
		newCreateCommand(c),
		newValidateCommand(c),
	)

	return root
}
