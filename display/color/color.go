// Package color centralizes color enablement for wtop.
//
// It implements the NO_COLOR specification (https://no-color.org/) and
// automatic pipe/redirect detection, and switches every color layer the
// dashboard uses in one place: the fatih/color palette that styles the
// plain dashboard rows, and the lipgloss renderer behind the widgets
// and the TUI. When color is off both layers emit plain text, so the
// layout engine sees content with no escape sequences at all.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	fcolor "github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ShouldDisable reports whether color output should be suppressed:
// when NO_COLOR is set (any value counts, per no-color.org), or when
// stdout is not a terminal.
func ShouldDisable() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return true
	}
	return false
}

// Apply configures both color layers from ShouldDisable and returns
// whether color is enabled. With force set, color is disabled
// regardless of the environment (the -no-color flag).
func Apply(force bool) bool {
	if force || ShouldDisable() {
		Disable()
		return false
	}
	fcolor.NoColor = false
	return true
}

// Disable unconditionally turns off all color output: the fatih/color
// package stops emitting escape sequences and lipgloss renders through
// the Ascii profile. Tests use this to get deterministic plain output.
func Disable() {
	fcolor.NoColor = true
	lipgloss.SetColorProfile(termenv.Ascii)
}
