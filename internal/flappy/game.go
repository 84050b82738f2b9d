// Package flappy implements the flapterm simulation core: a fixed-timestep
// physics, collision and scoring loop for a Flappy Bird-style game.
//
// The package is pure logic with no platform dependencies. The platform
// layer drives it by calling Step once per display frame and Flap once per
// input event, and reads state back through Snapshot.
package flappy

import (
	"time"

	"github.com/dmalakhov/flapterm/internal/config"
)

// Start-screen bob: a cosmetic sinusoidal oscillation of the bird around
// the vertical center, driven by wall-clock time. It has no velocity
// semantics and never affects collision or score.
const (
	bobAmplitude = 12.0 // World units
	bobPeriod    = 1600 * time.Millisecond
)

// Game holds the complete session state. It has exactly one mutator per
// concern: Step (the frame loop) and Flap (the input handler), both called
// from the same logical thread, so no locking is needed.
type Game struct {
	cfg config.Config

	mode    Mode
	birdY   float64 // Bird vertical center, world units
	birdVel float64 // Bird vertical velocity, units per frame
	pipes   *pipeQueue
	score   int
	best    int // Session best; monotonically non-decreasing
	tick    int // Frame counter, gates spawn timing only

	gaps      GapSource
	now       func() time.Time
	startedAt time.Time
}

// New creates a session with the given tuning and gap-height source.
// The config must already be validated.
func New(cfg config.Config, gaps GapSource) *Game {
	g := &Game{
		cfg:   cfg,
		pipes: newPipeQueue(8),
		gaps:  gaps,
		now:   time.Now,
	}
	g.reset()
	return g
}

// NewSeeded creates a session with a deterministic seeded RNG.
func NewSeeded(cfg config.Config, seed int64) *Game {
	return New(cfg, NewRandSource(seed))
}

// reset restores the documented session defaults: start mode, bird at the
// vertical center with zero velocity, no pipes, zero score and frame count.
// The best score survives resets.
func (g *Game) reset() {
	g.mode = ModeStart
	g.birdY = g.cfg.World.Height / 2
	g.birdVel = 0
	g.pipes.clear()
	g.score = 0
	g.tick = 0
	g.startedAt = g.now()
}

// Flap is the single input entry point. Its effect depends on the mode:
// it starts a session, applies the upward impulse mid-flight, or resets
// after game over. Keyboard and pointer input both land here.
func (g *Game) Flap() {
	switch g.mode {
	case ModeStart:
		g.mode = ModePlaying
		g.birdVel = g.cfg.Physics.FlapImpulse
	case ModePlaying:
		// Overwrite, not additive: a flap always yields the same lift.
		g.birdVel = g.cfg.Physics.FlapImpulse
	case ModeGameOver:
		g.reset()
	}
}

// finish transitions Playing to GameOver and folds the session score into
// the best score. Calling it twice in one frame is a no-op.
func (g *Game) finish() {
	if g.mode != ModePlaying {
		return
	}
	g.mode = ModeGameOver
	if g.score > g.best {
		g.best = g.score
	}
}

// Mode returns the current session mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the current session score.
func (g *Game) Score() int {
	return g.score
}

// Best returns the best score seen by this session.
func (g *Game) Best() int {
	return g.best
}

// SeedBest installs a previously persisted best score. It never lowers
// the in-memory best, so a stale or failed read cannot lose progress.
func (g *Game) SeedBest(best int) {
	if best > g.best {
		g.best = best
	}
}

// Config returns the world tuning shared with the renderer.
func (g *Game) Config() config.Config {
	return g.cfg
}
