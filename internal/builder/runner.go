package builder

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/suisei-entertainment/sde/internal/errors"
	"github.com/suisei-entertainment/sde/internal/logging"
)

// CommandRunner executes one external command in a directory. Builders and
// executors depend on this interface so tests can substitute a recording
// implementation instead of spawning processes.
type CommandRunner interface {
	// Run executes the command and blocks until it exits.
	Run(ctx context.Context, dir, command string) error

	// Output executes the command and returns its trimmed standard output.
	Output(ctx context.Context, dir, command string) (string, error)
}

// ShellRunner runs commands through the system shell, matching the single
// formatted shell command convention used by every builder.
type ShellRunner struct {
	logger logging.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewShellRunner creates a runner that streams command output to the
// process's stdout and stderr.
func NewShellRunner(logger logging.Logger) *ShellRunner {
	return &ShellRunner{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run executes the command with the working directory set for the child
// process only; the tool's own working directory is never touched.
func (r *ShellRunner) Run(ctx context.Context, dir, command string) error {
	r.logger.Debug(ctx, "Executing command", "command", command, "dir", dir)

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		r.logger.Error(ctx, err, "Failed to execute command", "command", command)
		return errors.NewBuildError("command_failed", "command failed: "+command, err)
	}

	return nil
}

// Output executes the command and captures its standard output.
func (r *ShellRunner) Output(ctx context.Context, dir, command string) (string, error) {
	r.logger.Debug(ctx, "Executing command", "command", command, "dir", dir)

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir
	cmd.Stderr = r.stderr

	out, err := cmd.Output()
	if err != nil {
		r.logger.Error(ctx, err, "Failed to execute command", "command", command)
		return "", errors.NewBuildError("command_failed", "command failed: "+command, err)
	}

	return strings.TrimSpace(string(out)), nil
}
