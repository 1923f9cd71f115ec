// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/zabooya/gh-seed/internal/domain"
)

// CreateIssuesInput contains the parameters for a batch run.
type CreateIssuesInput struct {
	Manifest *domain.Manifest
	DryRun   bool // If true, report actions without calling the backend
}

// IssueOutcome records what happened to a single issue spec.
type IssueOutcome struct {
	Title   string
	URL     string // Set on live creation success
	Reason  string // Set on failure
	Created bool
}

// CreateIssuesOutput contains the result of a batch run.
type CreateIssuesOutput struct {
	Outcomes []IssueOutcome
	Total    int
	Created  int
	Failed   int
	DryRun   bool
}

// CreateIssues is the use case for bulk-creating issues from a manifest.
// Progress is written to out as it happens, so a long batch is observable.
type CreateIssues struct {
	github     domain.GitHub
	logger     *slog.Logger
	out        io.Writer
	labelColor string
}

// NewCreateIssues creates a new CreateIssues use case.
func NewCreateIssues(github domain.GitHub, logger *slog.Logger, out io.Writer, labelColor string) *CreateIssues {
	if labelColor == "" {
		labelColor = domain.DefaultLabelColor
	}
	return &CreateIssues{
		github:     github,
		logger:     logger,
		out:        out,
		labelColor: labelColor,
	}
}

// batchRun holds the per-run caches. Both grow monotonically and are
// discarded with the run, which keeps re-launching an interrupted batch
// naturally idempotent for milestones and labels.
type batchRun struct {
	milestones map[string]int
	labels     map[string]struct{}
	dryRun     bool
}

// Execute processes every issue in the manifest, in order.
// One issue's failure never stops the batch; failures are tallied
// and reported, not propagated.
func (uc *CreateIssues) Execute(_ context.Context, in CreateIssuesInput) (*CreateIssuesOutput, error) {
	run := &batchRun{
		milestones: make(map[string]int),
		labels:     make(map[string]struct{}),
		dryRun:     in.DryRun,
	}

	out := &CreateIssuesOutput{
		Outcomes: make([]IssueOutcome, 0, len(in.Manifest.Issues)),
		Total:    len(in.Manifest.Issues),
		DryRun:   in.DryRun,
	}

	for _, spec := range in.Manifest.Issues {
		outcome := uc.createOne(run, spec)
		if outcome.Created {
			out.Created++
		} else {
			out.Failed++
		}
		out.Outcomes = append(out.Outcomes, outcome)
	}

	return out, nil
}

// createOne processes a single issue spec.
func (uc *CreateIssues) createOne(run *batchRun, spec domain.IssueSpec) IssueOutcome {
	if err := spec.Validate(); err != nil {
		uc.printf("  ✗ Skipping issue without title\n")
		uc.logger.Warn("skipping malformed issue", "error", err)
		return IssueOutcome{Title: spec.Title, Reason: err.Error()}
	}

	uc.printf("\n→ Processing: %s\n", spec.Title)

	if spec.Milestone != "" {
		if _, ok := uc.resolveMilestone(run, spec.Milestone); !ok {
			uc.printf("  ✗ Failed to create/get milestone: %s\n", spec.Milestone)
			return IssueOutcome{Title: spec.Title, Reason: domain.ErrMilestoneNotFound.Error()}
		}
	}

	// Label failures degrade, not abort: the issue is still submitted
	// requesting the label by name, and the backend decides.
	for _, label := range spec.Labels {
		if err := uc.ensureLabel(run, label); err != nil {
			uc.printf("  ⚠ Warning: could not create label: %s\n", label)
			uc.logger.Warn("label creation failed", "label", label, "error", err)
		}
	}

	if run.dryRun {
		uc.printf("  [dry-run] Would create issue:\n")
		uc.printf("    Title: %s\n", spec.Title)
		uc.printf("    Labels: %s\n", strings.Join(spec.Labels, ", "))
		uc.printf("    Milestone: %s\n", spec.Milestone)
		return IssueOutcome{Title: spec.Title, Created: true}
	}

	uc.printf("  ↻ Creating issue...\n")
	url, err := uc.github.CreateIssue(domain.CreateIssueOptions{
		Title:     spec.Title,
		Body:      spec.Body,
		Labels:    spec.Labels,
		Milestone: spec.Milestone,
	})
	if err != nil {
		uc.printf("  ✗ Failed to create issue\n")
		uc.logger.Error("issue creation failed", "title", spec.Title, "error", err)
		return IssueOutcome{Title: spec.Title, Reason: err.Error()}
	}

	uc.printf("  ✓ Created: %s\n", url)
	return IssueOutcome{Title: spec.Title, URL: url, Created: true}
}

// resolveMilestone returns the milestone number for a title, creating the
// milestone when it does not exist. Each distinct title hits the backend
// at most once per run.
func (uc *CreateIssues) resolveMilestone(run *batchRun, title string) (int, bool) {
	if number, ok := run.milestones[title]; ok {
		return number, true
	}

	if run.dryRun {
		uc.printf("  [dry-run] Would create milestone: %s\n", title)
		run.milestones[title] = domain.DryRunMilestoneNumber
		return domain.DryRunMilestoneNumber, true
	}

	number, found, err := uc.github.FindMilestone(title)
	if err != nil {
		uc.logger.Error("milestone lookup failed", "milestone", title, "error", err)
		return 0, false
	}
	if found {
		uc.printf("  ✓ Milestone exists: %s (#%d)\n", title, number)
		run.milestones[title] = number
		return number, true
	}

	uc.printf("  ↻ Creating milestone: %s\n", title)
	number, err = uc.github.CreateMilestone(title)
	if err != nil {
		uc.logger.Error("milestone creation failed", "milestone", title, "error", err)
		return 0, false
	}

	uc.printf("  ✓ Created milestone: %s (#%d)\n", title, number)
	run.milestones[title] = number
	return number, true
}

// ensureLabel makes sure a label exists, creating it when missing.
// Each distinct name hits the backend at most once per run.
func (uc *CreateIssues) ensureLabel(run *batchRun, name string) error {
	if _, ok := run.labels[name]; ok {
		return nil
	}

	if run.dryRun {
		uc.printf("  [dry-run] Would create label: %s\n", name)
		run.labels[name] = struct{}{}
		return nil
	}

	exists, err := uc.github.LabelExists(name)
	if err != nil {
		return err
	}
	if exists {
		run.labels[name] = struct{}{}
		return nil
	}

	uc.printf("  ↻ Creating label: %s\n", name)
	if err := uc.github.CreateLabel(name, uc.labelColor); err != nil {
		return err
	}

	uc.printf("  ✓ Created label: %s\n", name)
	run.labels[name] = struct{}{}
	return nil
}

func (uc *CreateIssues) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(uc.out, format, args...)
}
