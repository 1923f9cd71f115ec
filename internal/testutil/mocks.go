// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"

	"github.com/zabooya/gh-seed/internal/domain"
)

// MockGitHub is a test double for domain.GitHub.
// It records every backend call so tests can assert call counts and order.
type MockGitHub struct {
	// Preconfigured remote state
	Milestones map[string]int // existing milestones: title -> number
	Labels     map[string]bool

	// Injected failures
	AuthErr            error
	FindMilestoneErr   error
	CreateMilestoneErr error
	LabelExistsErr     error
	CreateLabelErr     error
	CreateIssueErr     error

	// Recorded calls
	AuthCalls            int
	FindMilestoneCalls   []string
	CreateMilestoneCalls []string
	LabelExistsCalls     []string
	CreateLabelCalls     []string
	CreateLabelColors    []string
	CreateIssueCalls     []domain.CreateIssueOptions

	nextMilestone int
}

// NewMockGitHub creates a new MockGitHub with initialized maps.
func NewMockGitHub() *MockGitHub {
	return &MockGitHub{
		Milestones: make(map[string]int),
		Labels:     make(map[string]bool),
	}
}

// Ensure MockGitHub implements domain.GitHub interface.
var _ domain.GitHub = (*MockGitHub)(nil)

// CheckAuth records the call and returns the configured error.
func (m *MockGitHub) CheckAuth() error {
	m.AuthCalls++
	return m.AuthErr
}

// FindMilestone returns a preconfigured milestone, if any.
func (m *MockGitHub) FindMilestone(title string) (int, bool, error) {
	m.FindMilestoneCalls = append(m.FindMilestoneCalls, title)
	if m.FindMilestoneErr != nil {
		return 0, false, m.FindMilestoneErr
	}
	number, ok := m.Milestones[title]
	return number, ok, nil
}

// CreateMilestone assigns the next free number to the milestone.
func (m *MockGitHub) CreateMilestone(title string) (int, error) {
	m.CreateMilestoneCalls = append(m.CreateMilestoneCalls, title)
	if m.CreateMilestoneErr != nil {
		return 0, m.CreateMilestoneErr
	}
	m.nextMilestone++
	number := m.nextMilestone + 100 // distinguishable from preconfigured numbers
	m.Milestones[title] = number
	return number, nil
}

// LabelExists reports preconfigured labels.
func (m *MockGitHub) LabelExists(name string) (bool, error) {
	m.LabelExistsCalls = append(m.LabelExistsCalls, name)
	if m.LabelExistsErr != nil {
		return false, m.LabelExistsErr
	}
	return m.Labels[name], nil
}

// CreateLabel records the label as existing.
func (m *MockGitHub) CreateLabel(name, color string) error {
	m.CreateLabelCalls = append(m.CreateLabelCalls, name)
	m.CreateLabelColors = append(m.CreateLabelColors, color)
	if m.CreateLabelErr != nil {
		return m.CreateLabelErr
	}
	m.Labels[name] = true
	return nil
}

// CreateIssue records the options and returns a synthetic URL.
func (m *MockGitHub) CreateIssue(opts domain.CreateIssueOptions) (string, error) {
	m.CreateIssueCalls = append(m.CreateIssueCalls, opts)
	if m.CreateIssueErr != nil {
		return "", m.CreateIssueErr
	}
	return fmt.Sprintf("https://github.com/acme/widgets/issues/%d", len(m.CreateIssueCalls)), nil
}

// MutatingCalls returns the number of backend calls that would mutate
// remote state. Useful for dry-run assertions.
func (m *MockGitHub) MutatingCalls() int {
	return len(m.CreateMilestoneCalls) + len(m.CreateLabelCalls) + len(m.CreateIssueCalls)
}

// BackendCalls returns the number of backend calls of any kind,
// excluding the auth preflight.
func (m *MockGitHub) BackendCalls() int {
	return m.MutatingCalls() + len(m.FindMilestoneCalls) + len(m.LabelExistsCalls)
}

// MockExecutor is a test double for domain.CommandExecutor.
type MockExecutor struct {
	Commands []*domain.ExecCommand

	// Outputs is consumed front-to-back by Output calls.
	Outputs   [][]byte
	OutputErr error
	RunErr    error
}

// Ensure MockExecutor implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*MockExecutor)(nil)

// Output records the command and pops the next canned output.
func (m *MockExecutor) Output(cmd *domain.ExecCommand) ([]byte, error) {
	m.Commands = append(m.Commands, cmd)
	if m.OutputErr != nil {
		return nil, m.OutputErr
	}
	if len(m.Outputs) == 0 {
		return nil, nil
	}
	out := m.Outputs[0]
	m.Outputs = m.Outputs[1:]
	return out, nil
}

// Run records the command and returns the configured error.
func (m *MockExecutor) Run(cmd *domain.ExecCommand) error {
	m.Commands = append(m.Commands, cmd)
	return m.RunErr
}

// MockRepoDetector is a test double for domain.RepoDetector.
type MockRepoDetector struct {
	Slug string
	Err  error
}

// Detect returns the configured slug or error.
func (m *MockRepoDetector) Detect(_ string) (string, error) {
	return m.Slug, m.Err
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Cfg *domain.Config
	Err error
}

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Cfg != nil {
		return m.Cfg, nil
	}
	return domain.NewDefaultConfig(), nil
}
