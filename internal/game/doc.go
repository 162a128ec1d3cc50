// Package game implements the number guessing session.
//
// A Session draws one secret in [MinSecret, MaxSecret] and then reads one
// guess per line until a guess matches. Each iteration is one call to
// Session.Step, which reports two kinds of failure:
//   - *ParseError: the line was not an unsigned integer. The session is
//     unchanged and the caller may keep going.
//   - *InputStreamError: the input could not be read. The session cannot
//     continue.
//   - *OutputStreamError: feedback could not be written. Also fatal.
//
// Session.Run drives Step to completion and prints the fixed vocabulary:
// the banner, "You guessed: N", "Too small!", "Too big!", "Invalid number"
// and "Congratulations!".
package game
