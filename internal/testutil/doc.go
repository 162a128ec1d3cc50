// Package testutil provides shared test helpers for guess.
//
// # Fixtures
//
// The fixtures.go file provides inputs and random sources:
//
//   - ScriptedInput(lines...) - a reader yielding one newline-terminated line per argument
//   - FailingReader{Err} - a reader whose every Read fails
//   - FailingWriter{Err, Allow} - a writer that fails after Allow writes
//   - FixedSource(n) - a random source that makes DrawSecret return n
//
// # Assertions
//
// The assertions.go file splits and checks transcripts:
//
//   - Lines(out) - output split into lines without the trailing empty one
//   - AssertTranscript(t, out, lines...) - exact line-by-line comparison
//   - AssertNoLine(t, out, line) - line never printed
//
// # Timeouts
//
// RunWithDeadline(t, timeout, fn) runs fn and fails the test if it does not
// return in time, catching loops that never stop reading.
package testutil
