package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/thruflo/guess/internal/logging"
	"github.com/thruflo/guess/internal/tui"
)

// State is the position of a session in its two-state lifecycle.
type State int

const (
	AwaitingInput State = iota
	Won
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting input"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Result summarises a finished (or aborted) session.
// The counters feed the debug log only; they are never shown to the player.
type Result struct {
	State    State
	Guesses  int
	Rejected int
}

// Option configures a Session.
type Option func(*Session)

// WithReveal prints the secret right after the banner. Debug only.
func WithReveal(reveal bool) Option {
	return func(s *Session) { s.reveal = reveal }
}

// WithLogger sets the logger; a session id field is added to it.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithStyle sets how feedback lines are decorated.
func WithStyle(st *tui.Style) Option {
	return func(s *Session) { s.style = st }
}

// Session owns one secret and the input it is guessed from.
type Session struct {
	id     string
	secret Secret
	state  State
	in     *bufio.Reader
	out    io.Writer
	log    *logging.Logger
	style  *tui.Style
	reveal bool

	writeErr error
	guesses  int
	rejected int
}

// NewSession draws a secret from src and prepares a session reading
// guesses from in and writing feedback to out.
func NewSession(src Source, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		secret: DrawSecret(src),
		state:  AwaitingInput,
		in:     bufio.NewReader(in),
		out:    out,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.Default()
	}
	if s.style == nil {
		s.style = tui.NewStyle(false)
	}
	s.log = s.log.With("session", s.id)

	s.log.Debug("secret drawn", "secret", int(s.secret))
	return s
}

// ID returns the session identifier attached to log entries.
func (s *Session) ID() string {
	return s.id
}

// Secret returns the number being guessed.
func (s *Session) Secret() Secret {
	return s.secret
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Step reads and evaluates one line.
//
// A *ParseError means the line was rejected and nothing changed; nothing is
// printed for it, so the caller decides how to report it. A
// *InputStreamError means no further lines can be read, and an
// *OutputStreamError means feedback could not be written. Every error is
// returned with OutcomeUnknown. Otherwise the guess is echoed, its outcome
// printed, and a Correct outcome moves the session to Won.
func (s *Session) Step() (Outcome, error) {
	if s.state == Won {
		return OutcomeUnknown, ErrSessionOver
	}

	line, err := s.readLine()
	if err != nil {
		return OutcomeUnknown, err
	}

	g, err := ParseGuess(line)
	if err != nil {
		s.rejected++
		return OutcomeUnknown, err
	}
	s.guesses++

	s.printf("You guessed: %d\n", g)

	outcome := Compare(g, s.secret)
	s.log.Debug("guess evaluated", "guess", int(g), "outcome", outcome, "attempt", s.guesses)

	if outcome == Correct {
		s.state = Won
		s.printf("%s\n", s.style.Success(outcome.Message()))
	} else {
		s.printf("%s\n", s.style.Hint(outcome.Message()))
	}

	if err := s.outputErr(); err != nil {
		return OutcomeUnknown, err
	}
	return outcome, nil
}

// Run plays the session until the secret is guessed, the input fails or
// the output can no longer be written. Rejected lines are reported with
// InvalidMessage and the loop continues.
func (s *Session) Run() (Result, error) {
	s.printf("%s\n", s.style.Banner(Banner))
	if s.reveal {
		s.printf("The secret number is: %d\n", s.secret)
	}
	if err := s.outputErr(); err != nil {
		return s.abort(err)
	}

	for s.state == AwaitingInput {
		_, err := s.Step()
		if err == nil {
			continue
		}

		var pe *ParseError
		if errors.As(err, &pe) {
			s.log.Info("invalid guess", "input", pe.Input, "reason", pe.Reason)
			s.printf("%s\n", s.style.Problem(InvalidMessage))
			if err := s.outputErr(); err != nil {
				return s.abort(err)
			}
			continue
		}

		return s.abort(err)
	}

	s.log.Debug("session won", "guesses", s.guesses, "rejected", s.rejected)
	return s.result(), nil
}

func (s *Session) abort(err error) (Result, error) {
	s.log.Error("session aborted", "error", err, "guesses", s.guesses)
	return s.result(), err
}

// printf writes to the output until the first write error, which is kept
// for outputErr.
func (s *Session) printf(format string, args ...any) {
	if s.writeErr != nil {
		return
	}
	_, s.writeErr = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) outputErr() error {
	if s.writeErr == nil {
		return nil
	}
	return &OutputStreamError{Err: s.writeErr}
}

func (s *Session) result() Result {
	return Result{State: s.state, Guesses: s.guesses, Rejected: s.rejected}
}

// readLine returns the next line including its terminator. A final line
// without a newline is still returned; the read after it fails.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", &InputStreamError{Err: err}
	}
	return line, nil
}
