// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/zabooya/gh-seed/internal/domain"
	"github.com/zabooya/gh-seed/internal/infra/config"
	"github.com/zabooya/gh-seed/internal/infra/executor"
	"github.com/zabooya/gh-seed/internal/infra/gh"
	"github.com/zabooya/gh-seed/internal/infra/repo"
	"github.com/zabooya/gh-seed/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Executor     domain.CommandExecutor
	Repos        domain.RepoDetector
	ConfigLoader domain.ConfigLoader

	// GitHub overrides the gh-backed client when set (used by tests).
	GitHub domain.GitHub

	Logger  *slog.Logger
	Config  *domain.Config
	WorkDir string
}

// New creates a new Container rooted at the given working directory.
func New(dir string) (*Container, error) {
	loader := config.NewLoader(dir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))

	return &Container{
		Executor:     executor.NewClient(),
		Repos:        repo.NewDetector(),
		ConfigLoader: loader,
		Logger:       logger,
		Config:       cfg,
		WorkDir:      dir,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, github domain.GitHub, repos domain.RepoDetector, logger *slog.Logger) *Container {
	return &Container{
		GitHub: github,
		Repos:  repos,
		Logger: logger,
		Config: cfg,
	}
}

// GitHubFor returns the GitHub port bound to the given repository slug.
func (c *Container) GitHubFor(repoSlug string) domain.GitHub {
	if c.GitHub != nil {
		return c.GitHub
	}
	return gh.NewClient(repoSlug, c.Executor)
}

// CreateIssuesUseCase returns a new CreateIssues use case writing progress to out.
func (c *Container) CreateIssuesUseCase(github domain.GitHub, out io.Writer) *usecase.CreateIssues {
	return usecase.NewCreateIssues(github, c.Logger, out, c.Config.LabelColor)
}

// ValidateManifestUseCase returns a new ValidateManifest use case.
func (c *Container) ValidateManifestUseCase() *usecase.ValidateManifest {
	return usecase.NewValidateManifest()
}

// parseLogLevel parses a log level string into slog.Level.
func parseLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
