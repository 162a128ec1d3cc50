package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Lines splits a transcript into lines, dropping the empty string after the
// final newline.
func Lines(out string) []string {
	out = strings.TrimSuffix(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// AssertTranscript asserts that out consists of exactly the given lines.
func AssertTranscript(t *testing.T, out string, expected ...string) {
	t.Helper()
	assert.Equal(t, expected, Lines(out), "transcript mismatch")
}

// AssertNoLine asserts that line was never printed on its own.
func AssertNoLine(t *testing.T, out, line string) {
	t.Helper()
	assert.NotContains(t, Lines(out), line, "unexpected line %q", line)
}
