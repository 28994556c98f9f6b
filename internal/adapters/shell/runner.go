// Package shell provides the command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"go.trai.ch/genreqs/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the named command and blocks until it exits. Stdout and
// stderr are captured separately: callers parse stdout and forward stderr
// in error metadata. A command that starts and exits non-zero reports the
// exit code through RunResult with a nil error; the error is non-nil only
// when the command could not be started at all.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (ports.RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// After the kill signal, stop waiting on inherited pipes held open by
	// orphaned grandchildren.
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := ports.RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, zerr.With(zerr.Wrap(err, "failed to start command"), "command", name)
	}

	return res, nil
}
