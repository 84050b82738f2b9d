package flappy

import "math/rand"

// GapSource supplies gap-top heights for newly spawned pipes.
// It exists as an interface so tests can substitute fixed sequences
// for the seeded RNG used in real play.
type GapSource interface {
	// GapTop returns a value drawn uniformly from the inclusive range [min, max].
	GapTop(min, max int) int
}

// randSource draws gap tops from a seeded math/rand generator.
type randSource struct {
	rng *rand.Rand
}

// NewRandSource returns a GapSource backed by a deterministic seeded RNG.
func NewRandSource(seed int64) GapSource {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) GapTop(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}
