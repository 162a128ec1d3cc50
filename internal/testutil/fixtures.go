package testutil

import (
	"io"
	"strings"
)

// ScriptedInput returns a reader producing each line followed by '\n'.
// With no lines it behaves like a closed stream.
func ScriptedInput(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// FailingReader fails every Read with Err.
type FailingReader struct {
	Err error
}

func (r FailingReader) Read(p []byte) (int, error) {
	return 0, r.Err
}

// FailingWriter accepts Allow writes and fails every later one with Err.
type FailingWriter struct {
	Err    error
	Allow  int
	writes int
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	if w.writes >= w.Allow {
		return 0, w.Err
	}
	w.writes++
	return len(p), nil
}

// FixedSource is a random source that always lands on the same secret.
// IntN returns Secret-1 so that a draw over [1, n] yields Secret.
type FixedSource int

// IntN implements the game's Source interface.
func (f FixedSource) IntN(n int) int {
	v := int(f) - 1
	if v < 0 || v >= n {
		panic("testutil: FixedSource out of range")
	}
	return v
}

// SequenceSource returns its values in order, cycling when exhausted.
type SequenceSource struct {
	Values []int
	next   int
}

// IntN implements the game's Source interface; values are reduced modulo n.
func (s *SequenceSource) IntN(n int) int {
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return ((v % n) + n) % n
}
