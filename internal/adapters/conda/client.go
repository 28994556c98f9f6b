// Package conda shells out to the conda tool through the command runner port.
package conda

import (
	"context"
	"strings"

	"go.trai.ch/genreqs/internal/core/domain"
	"go.trai.ch/genreqs/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.CondaClient on top of a command runner.
type Client struct {
	runner ports.CommandRunner
}

// NewClient creates a new Client using the given runner.
func NewClient(runner ports.CommandRunner) *Client {
	return &Client{runner: runner}
}

// ExportEnvironment runs `conda env export --from-history` and returns its
// stdout: the active environment's description scoped to explicitly
// requested packages.
func (c *Client) ExportEnvironment(ctx context.Context) ([]byte, error) {
	res, err := c.runner.Run(ctx, "conda", "env", "export", "--from-history")
	if err != nil {
		return nil, zerr.With(domain.ErrCondaExportFailed, "cause", err.Error())
	}
	if res.ExitCode != 0 {
		return nil, toolError(domain.ErrCondaExportFailed, res)
	}
	return []byte(res.Stdout), nil
}

// ListInstalled runs `conda list --export` and parses its stdout into
// pinned packages, in the order conda reports them.
func (c *Client) ListInstalled(ctx context.Context) ([]domain.PinnedPackage, error) {
	res, err := c.runner.Run(ctx, "conda", "list", "--export")
	if err != nil {
		return nil, zerr.With(domain.ErrCondaListFailed, "cause", err.Error())
	}
	if res.ExitCode != 0 {
		return nil, toolError(domain.ErrCondaListFailed, res)
	}
	return parseExport(res.Stdout), nil
}

// parseExport reads `conda list --export` output. Each line containing an
// '=' contributes its first two fields as name and version; any further
// field (the build hash) is discarded. Lines without an '=' are ignored.
func parseExport(out string) []domain.PinnedPackage {
	var pins []domain.PinnedPackage
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "=") {
			continue
		}
		fields := strings.SplitN(line, "=", 3)
		pin := domain.PinnedPackage{Name: domain.PackageName(fields[0])}
		if len(fields) > 1 {
			pin.Version = fields[1]
		}
		pins = append(pins, pin)
	}
	return pins
}

// toolError attaches the tool's stderr and exit code to the failure kind
// so the top-level handler can surface what conda reported.
func toolError(kind error, res ports.RunResult) error {
	err := zerr.With(kind, "exit_code", res.ExitCode)
	if stderr := strings.TrimSpace(res.Stderr); stderr != "" {
		err = zerr.With(err, "stderr", stderr)
	}
	return err
}
