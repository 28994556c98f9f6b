// Package style provides shared styling primitives, brand colors and
// icons, for consistent CLI presentation.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)
