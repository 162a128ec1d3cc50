package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/guess/internal/config"
)

func TestStyle_Disabled(t *testing.T) {
	s := NewStyle(false)

	assert.False(t, s.Enabled())
	assert.Equal(t, "Too big!", s.Hint("Too big!"))
	assert.Equal(t, "Congratulations!", s.Success("Congratulations!"))
	assert.Equal(t, "Invalid number", s.Problem("Invalid number"))
	assert.Equal(t, "Guess the Number", s.Banner("Guess the Number"))
}

func TestStyle_NilIsPlain(t *testing.T) {
	var s *Style
	assert.False(t, s.Enabled())
	assert.Equal(t, "Too small!", s.Hint("Too small!"))
}

func TestStyle_Enabled(t *testing.T) {
	s := NewStyle(true)

	tests := []struct {
		name  string
		got   string
		codes string
	}{
		{"hint", s.Hint("Too small!"), FgYellow},
		{"success", s.Success("Congratulations!"), Bold + FgGreen},
		{"problem", s.Problem("Invalid number"), FgRed},
		{"banner", s.Banner("Guess the Number"), Bold + FgCyan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, len(tt.got) > len(tt.codes))
			assert.Equal(t, tt.codes, tt.got[:len(tt.codes)])
			assert.Equal(t, Reset, tt.got[len(tt.got)-len(Reset):])
		})
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, ColorEnabled(config.ColorAlways, &buf))
	assert.False(t, ColorEnabled(config.ColorNever, &buf))
	assert.False(t, ColorEnabled(config.ColorAuto, &buf), "buffers are never terminals")
	assert.False(t, ColorEnabled("sparkly", &buf))
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.False(t, ColorEnabled(config.ColorAuto, f))
}
