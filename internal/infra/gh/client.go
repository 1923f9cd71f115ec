// Package gh provides GitHub operations via the gh CLI.
package gh

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zabooya/gh-seed/internal/domain"
)

// Client implements domain.GitHub by shelling out to gh.
// Transport, auth and rate limiting are all gh's problem.
type Client struct {
	exec domain.CommandExecutor
	repo string // owner/name
}

// NewClient creates a new gh-backed client for the given repository.
func NewClient(repo string, exec domain.CommandExecutor) *Client {
	return &Client{repo: repo, exec: exec}
}

// Ensure Client implements domain.GitHub interface.
var _ domain.GitHub = (*Client)(nil)

// CheckAuth verifies the gh CLI is installed and authenticated.
func (c *Client) CheckAuth() error {
	cmd := &domain.ExecCommand{Program: "gh", Args: []string{"auth", "status"}}
	if err := c.exec.Run(cmd); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

// FindMilestone looks up an open milestone by exact title.
// gh api repos/{repo}/milestones --jq '.[] | select(.title == "...") | .number'
func (c *Client) FindMilestone(title string) (int, bool, error) {
	cmd := &domain.ExecCommand{
		Program: "gh",
		Args: []string{
			"api", fmt.Sprintf("repos/%s/milestones", c.repo),
			"--jq", fmt.Sprintf(".[] | select(.title == %s) | .number", jqString(title)),
		},
	}
	out, err := c.exec.Output(cmd)
	if err != nil {
		return 0, false, fmt.Errorf("list milestones: %w", err)
	}
	s := strings.TrimSpace(string(out))
	if s == "" {
		return 0, false, nil
	}
	number, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("parse milestone number %q: %w", s, err)
	}
	return number, true, nil
}

// CreateMilestone creates a milestone and returns its number.
func (c *Client) CreateMilestone(title string) (int, error) {
	cmd := &domain.ExecCommand{
		Program: "gh",
		Args: []string{
			"api", fmt.Sprintf("repos/%s/milestones", c.repo),
			"-f", "title=" + title,
			"--jq", ".number",
		},
	}
	out, err := c.exec.Output(cmd)
	if err != nil {
		return 0, fmt.Errorf("create milestone: %w", err)
	}
	number, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, fmt.Errorf("parse milestone number: %w", err)
	}
	return number, nil
}

// LabelExists checks whether a label with the exact name exists.
func (c *Client) LabelExists(name string) (bool, error) {
	cmd := &domain.ExecCommand{
		Program: "gh",
		Args: []string{
			"label", "list",
			"--repo", c.repo,
			"--json", "name",
			"--jq", fmt.Sprintf(".[] | select(.name == %s) | .name", jqString(name)),
		},
	}
	out, err := c.exec.Output(cmd)
	if err != nil {
		return false, fmt.Errorf("list labels: %w", err)
	}
	return strings.TrimSpace(string(out)) == name, nil
}

// CreateLabel creates a label with the given hex color.
func (c *Client) CreateLabel(name, color string) error {
	cmd := &domain.ExecCommand{
		Program: "gh",
		Args: []string{
			"label", "create", name,
			"--repo", c.repo,
			"--color", color,
		},
	}
	if err := c.exec.Run(cmd); err != nil {
		return fmt.Errorf("create label %s: %w", name, err)
	}
	return nil
}

// CreateIssue creates an issue and returns its URL.
// The milestone is passed by title; gh resolves it server-side.
func (c *Client) CreateIssue(opts domain.CreateIssueOptions) (string, error) {
	args := []string{
		"issue", "create",
		"--repo", c.repo,
		"--title", opts.Title,
		"--body", opts.Body,
	}
	if len(opts.Labels) > 0 {
		args = append(args, "--label", strings.Join(opts.Labels, ","))
	}
	if opts.Milestone != "" {
		args = append(args, "--milestone", opts.Milestone)
	}

	cmd := &domain.ExecCommand{Program: "gh", Args: args}
	out, err := c.exec.Output(cmd)
	if err != nil {
		return "", fmt.Errorf("create issue: %w", err)
	}
	url := strings.TrimSpace(string(out))
	if url == "" {
		return "", domain.ErrIssueNotCreated
	}
	return url, nil
}

// jqString quotes a value for interpolation into a jq expression.
// Go string quoting is a superset of jq's JSON string syntax.
func jqString(s string) string {
	return strconv.Quote(s)
}
