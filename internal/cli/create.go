package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zabooya/gh-seed/internal/app"
	"github.com/zabooya/gh-seed/internal/domain"
	"github.com/zabooya/gh-seed/internal/usecase"
)

// newCreateCommand creates the create command for running a batch.
func newCreateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Repo   string
		File   string
		DryRun bool
	}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create issues, milestones and labels from a manifest",
		Long: `Create every issue listed in the manifest, resolving milestones and
labels first (create-or-reuse, cached for the run).

Examples:
  # Create issues in the repository of the current directory
  gh-seed create

  # Preview without touching GitHub
  gh-seed create --dry-run

  # Explicit target repository and manifest
  gh-seed create --repo acme/widgets --file backlog.yaml

Manifest format:
  issues:
    - title: Implement hand ranking
      body: |
        Details here.
      labels: [enhancement, core]
      milestone: v1.0`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file := opts.File
			if file == "" {
				file = c.Config.File
			}

			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("load manifest: %w", err)
			}
			manifest, err := domain.ParseManifest(content)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if manifest.Empty() {
				_, _ = fmt.Fprintln(out, "No issues found in manifest")
				return nil
			}

			repoSlug, err := resolveRepo(c, opts.Repo)
			if err != nil {
				return err
			}

			github := c.GitHubFor(repoSlug)
			if err := github.CheckAuth(); err != nil {
				return err
			}

			printRunHeader(out, repoSlug, file, len(manifest.Issues), opts.DryRun)

			uc := c.CreateIssuesUseCase(github, out)
			result, err := uc.Execute(cmd.Context(), usecase.CreateIssuesInput{
				Manifest: manifest,
				DryRun:   opts.DryRun,
			})
			if err != nil {
				return err
			}

			printSummary(out, result)

			// Per-issue failures are reported above, never via exit status,
			// so a partially failed batch still completes.
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Repo, "repo", "", "Target repository (owner/name, default: config or git remote)")
	cmd.Flags().StringVar(&opts.File, "file", "", "Manifest path (default: "+domain.DefaultManifestPath+")")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview actions without calling GitHub")

	return cmd
}

// resolveRepo picks the target repository: flag, then config, then the
// origin remote of the working directory.
func resolveRepo(c *app.Container, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if c.Config.Repo != "" {
		return c.Config.Repo, nil
	}
	return c.Repos.Detect(c.WorkDir)
}

// printRunHeader prints the banner before the batch starts.
func printRunHeader(w io.Writer, repoSlug, file string, count int, dryRun bool) {
	mode := "LIVE"
	if dryRun {
		mode = "DRY RUN"
	}
	_, _ = fmt.Fprintln(w, titleStyle.Render("gh-seed — GitHub issue bulk creator"))
	_, _ = fmt.Fprintf(w, "Repository: %s\n", repoSlug)
	_, _ = fmt.Fprintf(w, "Manifest:   %s\n", file)
	_, _ = fmt.Fprintf(w, "Mode:       %s\n", mode)
	_, _ = fmt.Fprintf(w, "\nFound %d issues to create\n", count)
}

// printSummary prints the aggregate result of a batch run.
func printSummary(w io.Writer, result *usecase.CreateIssuesOutput) {
	_, _ = fmt.Fprintf(w, "\n%s\n", titleStyle.Render("Summary"))
	_, _ = fmt.Fprintf(w, "Total issues: %d\n", result.Total)
	_, _ = fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("✓ Created: %d", result.Created)))
	_, _ = fmt.Fprintln(w, failureStyle.Render(fmt.Sprintf("✗ Failed: %d", result.Failed)))

	if result.DryRun {
		_, _ = fmt.Fprintln(w, dimStyle.Render("\nThis was a dry run. No issues were actually created."))
		_, _ = fmt.Fprintln(w, dimStyle.Render("Run without --dry-run to create them."))
	}
}
