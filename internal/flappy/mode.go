package flappy

// Mode identifies which phase of a session is active and therefore which
// update rules apply on each tick.
type Mode int

const (
	// ModeStart is the idle title phase; the bird bobs cosmetically and
	// no physics or scoring runs.
	ModeStart Mode = iota

	// ModePlaying is the live phase: gravity, pipes, collisions, score.
	ModePlaying

	// ModeGameOver is terminal for the session. A flap resets to ModeStart.
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
