package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// CommandError reports a command that exited non-zero.
type CommandError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s exited with code %d: %s", e.Command, e.ExitCode, strings.TrimSpace(e.Output))
}

// Local runs commands on the local host via os/exec.
type Local struct {
	logger *slog.Logger
}

// NewLocal returns a Runner backed by os/exec.
func NewLocal(logger *slog.Logger) *Local {
	if logger == nil {
		logger = slog.Default()
	}
	return &Local{logger: logger}
}

// Run executes the command and returns combined stdout/stderr. A non-zero
// exit is returned as a *CommandError carrying the full command line, exit
// code, and captured output.
func (l *Local) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmdStr := strings.Join(append([]string{name}, args...), " ")
	l.logger.Debug("executing command", slog.String("cmd", cmdStr))

	// #nosec G204 - command names and arguments come from internal call sites
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			l.logger.Warn("command failed",
				slog.String("cmd", cmdStr),
				slog.Int("exit_code", exitErr.ExitCode()),
			)
			return output, &CommandError{
				Command:  cmdStr,
				ExitCode: exitErr.ExitCode(),
				Output:   string(output),
			}
		}
		return output, fmt.Errorf("failed to execute %s: %w", cmdStr, err)
	}

	l.logger.Debug("command succeeded", slog.String("cmd", cmdStr))
	return output, nil
}
