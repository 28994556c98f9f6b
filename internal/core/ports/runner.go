package ports

import "context"

// RunResult captures everything a finished command reported.
type RunResult struct {
	// Stdout is the complete standard output of the command.
	Stdout string

	// Stderr is the complete standard error of the command.
	Stderr string

	// ExitCode is the command's exit status. Zero means success.
	ExitCode int
}

// CommandRunner defines the interface for running external commands.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes the named command with the given arguments and blocks
	// until it exits. A command that starts but exits non-zero returns a
	// RunResult with the exit code and a nil error; the error is non-nil
	// only when the command could not be run at all.
	Run(ctx context.Context, name string, args ...string) (RunResult, error)
}
