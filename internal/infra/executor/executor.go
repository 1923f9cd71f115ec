// Package executor provides command execution functionality.
package executor

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/zabooya/gh-seed/internal/domain"
)

// Client implements domain.CommandExecutor.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Output runs the command and returns its stdout.
// On failure the command's stderr is folded into the returned error.
func (c *Client) Output(cmd *domain.ExecCommand) ([]byte, error) {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted use case code
	execCmd := exec.Command(cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	out, err := execCmd.Output()
	if err != nil {
		return nil, wrapExitError(cmd, err)
	}
	return out, nil
}

// Run runs the command, discarding output.
func (c *Client) Run(cmd *domain.ExecCommand) error {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted use case code
	execCmd := exec.Command(cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	if out, err := execCmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", cmd.Program, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// wrapExitError attaches captured stderr to exec errors so callers
// see the tool's own diagnostic instead of just an exit code.
func wrapExitError(cmd *domain.ExecCommand, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return fmt.Errorf("%s: %w: %s", cmd.Program, err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return fmt.Errorf("%s: %w", cmd.Program, err)
}
