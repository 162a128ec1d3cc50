package game

import "math/rand/v2"

// The secret is drawn from this closed range.
const (
	MinSecret = 1
	MaxSecret = 100
)

// Secret is the number the player has to find.
type Secret uint32

// Source supplies uniform random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type runtimeSource struct{}

func (runtimeSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns a Source backed by the runtime's randomly seeded generator.
func DefaultSource() Source {
	return runtimeSource{}
}

// NewSeededSource returns a deterministic Source for reproducible sessions.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// DrawSecret picks a secret uniformly from [MinSecret, MaxSecret].
func DrawSecret(src Source) Secret {
	return Secret(MinSecret + src.IntN(MaxSecret-MinSecret+1))
}

// InRange reports whether s lies in [MinSecret, MaxSecret].
func (s Secret) InRange() bool {
	return s >= MinSecret && s <= MaxSecret
}
