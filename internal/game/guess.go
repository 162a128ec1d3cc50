package game

import (
	"cmp"
	"errors"
	"strconv"
	"strings"
)

// Guess is one parsed attempt at the secret.
type Guess uint32

// Outcome is the result of comparing a guess with the secret.
type Outcome int

const (
	// OutcomeUnknown is returned alongside errors; no guess was compared.
	OutcomeUnknown Outcome = iota
	TooSmall
	Correct
	TooBig
)

// Feedback lines printed by a session.
const (
	Banner         = "Guess the Number"
	InvalidMessage = "Invalid number"
	TooSmallMsg    = "Too small!"
	TooBigMsg      = "Too big!"
	CorrectMsg     = "Congratulations!"
)

// Message returns the line printed for the outcome, or "" for OutcomeUnknown.
func (o Outcome) Message() string {
	switch o {
	case TooSmall:
		return TooSmallMsg
	case TooBig:
		return TooBigMsg
	case Correct:
		return CorrectMsg
	default:
		return ""
	}
}

// String returns a log-friendly name for the outcome.
func (o Outcome) String() string {
	switch o {
	case TooSmall:
		return "too_small"
	case TooBig:
		return "too_big"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// ParseGuess trims surrounding whitespace from line and parses it as an
// unsigned 32-bit decimal integer. One leading '+' is allowed.
func ParseGuess(line string) (Guess, error) {
	text := strings.TrimSpace(line)

	switch {
	case text == "":
		return 0, &ParseError{Input: text, Reason: ReasonEmpty}
	case strings.HasPrefix(text, "-"):
		return 0, &ParseError{Input: text, Reason: ReasonNegative}
	}

	n, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 32)
	if err != nil {
		reason := ReasonNotANumber
		if errors.Is(err, strconv.ErrRange) {
			reason = ReasonOverflow
		}
		return 0, &ParseError{Input: text, Reason: reason, Err: err}
	}

	return Guess(n), nil
}

// Compare orders a guess against the secret.
func Compare(g Guess, s Secret) Outcome {
	switch cmp.Compare(uint32(g), uint32(s)) {
	case -1:
		return TooSmall
	case 1:
		return TooBig
	default:
		return Correct
	}
}
