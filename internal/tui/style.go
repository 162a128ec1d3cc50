package tui

import (
	"io"
	"os"

	"github.com/thruflo/guess/internal/config"
	"golang.org/x/term"
)

// ANSI escape sequences
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	FgRed    = "\033[31m"
	FgGreen  = "\033[32m"
	FgYellow = "\033[33m"
	FgCyan   = "\033[36m"
)

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorEnabled resolves a config colour mode against the destination writer.
// Auto enables colour only for terminals; unknown modes disable it.
func ColorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorAuto:
		return IsTerminal(out)
	default:
		return false
	}
}

// Style decorates game lines with ANSI colour when enabled.
// A nil or disabled Style returns text unchanged.
type Style struct {
	enabled bool
}

// NewStyle returns a Style that colours output iff enabled is true.
func NewStyle(enabled bool) *Style {
	return &Style{enabled: enabled}
}

// Enabled reports whether the style emits escape sequences.
func (s *Style) Enabled() bool {
	return s != nil && s.enabled
}

func (s *Style) wrap(codes, text string) string {
	if !s.Enabled() {
		return text
	}
	return codes + text + Reset
}

// Banner styles the start-of-game title.
func (s *Style) Banner(text string) string {
	return s.wrap(Bold+FgCyan, text)
}

// Hint styles directional feedback such as "Too big!".
func (s *Style) Hint(text string) string {
	return s.wrap(FgYellow, text)
}

// Success styles the winning message.
func (s *Style) Success(text string) string {
	return s.wrap(Bold+FgGreen, text)
}

// Problem styles rejected input.
func (s *Style) Problem(text string) string {
	return s.wrap(FgRed, text)
}
