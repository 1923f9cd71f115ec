package domain

// GitHub provides issue-tracker operations via the gh CLI.
// Implementations perform every remote effect; the use case layer
// only inspects the returned values.
type GitHub interface {
	// CheckAuth verifies the gh CLI is installed and authenticated.
	CheckAuth() error

	// FindMilestone looks up an open milestone by exact title.
	FindMilestone(title string) (number int, found bool, err error)

	// CreateMilestone creates a milestone and returns its number.
	CreateMilestone(title string) (number int, err error)

	// LabelExists checks whether a label with the exact name exists.
	LabelExists(name string) (bool, error)

	// CreateLabel creates a label with the given hex color.
	CreateLabel(name, color string) error

	// CreateIssue creates an issue and returns its URL.
	CreateIssue(opts CreateIssueOptions) (url string, err error)
}

// CreateIssueOptions configures issue creation.
// Milestone is the human-readable title; gh resolves it at submission time.
type CreateIssueOptions struct {
	Title     string
	Body      string
	Milestone string
	Labels    []string
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Output runs the command and returns its stdout.
	Output(cmd *ExecCommand) ([]byte, error)

	// Run runs the command, discarding output.
	Run(cmd *ExecCommand) error
}

// RepoDetector resolves the owner/name slug of the repository
// containing a directory.
type RepoDetector interface {
	Detect(dir string) (string, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global + defaults).
	Load() (*Config, error)
}
