// Package style provides terminal styling for askllava using Lipgloss.
package style

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Ayu palette.
var (
	colorWarn = lipgloss.AdaptiveColor{
		Light: "#f2ae49",
		Dark:  "#ffb454",
	}
	colorFail = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
	colorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
)

// IconHint prefixes recovery hints.
const IconHint = "→"

var (
	// Warning style for hints and cautions (yellow)
	Warning = newWarning()

	// Error style for failures (red)
	Error = newError()

	// Dim style for secondary information (gray)
	Dim = newDim()

	// Bold style for emphasis
	Bold = newBold()
)

func newWarning() lipgloss.Style { return lipgloss.NewStyle().Foreground(colorWarn).Bold(true) }
func newError() lipgloss.Style   { return lipgloss.NewStyle().Foreground(colorFail).Bold(true) }
func newDim() lipgloss.Style     { return lipgloss.NewStyle().Foreground(colorMuted) }
func newBold() lipgloss.Style    { return lipgloss.NewStyle().Bold(true) }

// SetColorMode overrides style rendering: "always", "auto" or "never".
// The empty string is treated as "auto".
func SetColorMode(mode string) error {
	switch mode {
	case "", "auto":
		return nil
	case "never":
		_ = os.Setenv("NO_COLOR", "1")
		Warning = lipgloss.NewStyle()
		Error = lipgloss.NewStyle()
		Dim = lipgloss.NewStyle()
		Bold = lipgloss.NewStyle()
		return nil
	case "always":
		_ = os.Unsetenv("NO_COLOR")
		_ = os.Setenv("CLICOLOR_FORCE", "1")
		Warning = newWarning()
		Error = newError()
		Dim = newDim()
		Bold = newBold()
		return nil
	default:
		return fmt.Errorf("invalid color mode %q: must be always, auto, or never", mode)
	}
}
