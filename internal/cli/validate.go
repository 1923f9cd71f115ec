package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zabooya/gh-seed/internal/app"
	"github.com/zabooya/gh-seed/internal/usecase"
)

// newValidateCommand creates the validate command for linting a manifest.
func newValidateCommand(c *app.Container) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse and lint a manifest without calling GitHub",
		Long: `Validate parses the manifest and reports entries that would fail
during a create run (missing titles) or behave surprisingly
(duplicate titles). No remote calls are made.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				file = c.Config.File
			}

			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("load manifest: %w", err)
			}

			uc := c.ValidateManifestUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ValidateManifestInput{Content: content})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Manifest.Empty() {
				_, _ = fmt.Fprintln(w, "No issues found in manifest")
				return nil
			}

			for _, p := range out.Problems {
				_, _ = fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("⚠ issue %d: %s", p.Index, p.Reason)))
			}

			if len(out.Problems) > 0 {
				return fmt.Errorf("manifest has %d problem(s)", len(out.Problems))
			}

			_, _ = fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("✓ manifest OK: %d issues", len(out.Manifest.Issues))))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Manifest path (default: issues.yaml)")

	return cmd
}
