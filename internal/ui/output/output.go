// Package output provides utilities for creating termenv.Output with
// consistent color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Profile returns the color profile for the given writer. NO_COLOR always
// disables color; writers that are not terminals get plain output;
// otherwise the terminal's capabilities are detected automatically.
func Profile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}

	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output for the writer with the shared profile logic.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(Profile(w)),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
