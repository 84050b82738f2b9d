package flappy

import (
	"testing"

	"github.com/dmalakhov/flapterm/internal/config"
)

// fixedGaps always returns the same gap top, keeping pipe layout
// deterministic regardless of the draw range.
type fixedGaps struct {
	top int
}

func (f fixedGaps) GapTop(min, max int) int {
	if f.top < min {
		return min
	}
	if f.top > max {
		return max
	}
	return f.top
}

// newPlayingGame returns a session forced into playing mode with the bird
// at rest mid-world, bypassing the start-screen transition.
func newPlayingGame(t *testing.T, gapTop int) *Game {
	t.Helper()
	cfg := config.Default()
	g := New(cfg, fixedGaps{top: gapTop})
	g.mode = ModePlaying
	g.birdY = 300
	g.birdVel = 0
	return g
}

func TestGravityAccumulation(t *testing.T) {
	g := newPlayingGame(t, 200)

	// gravity=0.25, start position=300, start velocity=0:
	// one frame with no input gives velocity=0.25, position=300.25
	g.Step()

	if g.birdVel != 0.25 {
		t.Errorf("velocity after 1 frame = %g, expected 0.25", g.birdVel)
	}
	if g.birdY != 300.25 {
		t.Errorf("position after 1 frame = %g, expected 300.25", g.birdY)
	}

	// Velocity grows by exactly the gravity constant every frame
	prev := g.birdVel
	for i := 0; i < 10; i++ {
		g.Step()
		if got := g.birdVel - prev; got != 0.25 {
			t.Fatalf("frame %d: velocity delta = %g, expected 0.25", i, got)
		}
		prev = g.birdVel
	}
}

func TestFlapOverwritesVelocity(t *testing.T) {
	g := newPlayingGame(t, 200)

	// A flap then one frame: velocity = -5.5 + 0.25 = -5.25,
	// position = 300 - 5.25 = 294.75
	g.Flap()
	g.Step()

	if g.birdVel != -5.25 {
		t.Errorf("velocity = %g, expected -5.25", g.birdVel)
	}
	if g.birdY != 294.75 {
		t.Errorf("position = %g, expected 294.75", g.birdY)
	}

	// Overwrite, not additive: flapping with any prior velocity gives
	// exactly the impulse constant.
	for _, prior := range []float64{-20, -5.5, 0, 3, 99} {
		g.birdVel = prior
		g.Flap()
		if g.birdVel != -5.5 {
			t.Errorf("flap with prior velocity %g gave %g, expected -5.5", prior, g.birdVel)
		}
	}
}

func TestSpawnTiming(t *testing.T) {
	g := newPlayingGame(t, 200)

	spawned := map[int]bool{}
	for frame := 0; frame < 300; frame++ {
		before := g.pipes.len()
		g.Step()
		if g.pipes.len() > before {
			spawned[frame] = true
		}
		// Pin the bird mid-gap to isolate spawn timing from physics.
		g.birdY = 300
		g.birdVel = 0
	}

	// spawn_every=140: pipes appear exactly on frame counter 0, 140, 280
	for _, want := range []int{0, 140, 280} {
		if !spawned[want] {
			t.Errorf("expected a spawn on frame %d", want)
		}
	}
	if len(spawned) != 3 {
		t.Errorf("expected exactly 3 spawns in 300 frames, got %d (%v)", len(spawned), spawned)
	}
}

func TestSpawnedPipePlacement(t *testing.T) {
	g := newPlayingGame(t, 200)
	g.Step()

	if g.pipes.len() != 1 {
		t.Fatalf("expected 1 pipe after first frame, got %d", g.pipes.len())
	}
	p := g.pipes.front()
	// Spawned at the right world edge, then moved once by pipe_speed
	if p.X != 400-2 {
		t.Errorf("pipe X = %g, expected 398", p.X)
	}
	if p.GapTop != 200 {
		t.Errorf("pipe gap top = %d, expected 200", p.GapTop)
	}
	if p.Scored {
		t.Error("fresh pipe must not be marked scored")
	}
}

func TestScoreIncrementsExactlyOnce(t *testing.T) {
	g := newPlayingGame(t, 200)
	g.tick = 1 // Keep the spawn schedule quiet for this test

	// Bird box spans x in [68, 92]. A pipe with right edge just right of
	// the bird's left edge is about to be passed.
	g.pipes.pushBack(Pipe{X: 18, GapTop: 200})

	g.Step() // Pipe right edge at 68: not strictly passed yet
	if g.score != 0 {
		t.Fatalf("score = %d before the pipe is fully passed, expected 0", g.score)
	}

	g.birdY, g.birdVel = 300, 0
	g.Step() // Right edge at 66 < 68: passed
	if g.score != 1 {
		t.Fatalf("score = %d after passing, expected 1", g.score)
	}
	if !g.pipes.front().Scored {
		t.Error("passed pipe should carry the scored flag")
	}

	// Further frames never re-score the same pipe
	for i := 0; i < 20; i++ {
		g.birdY, g.birdVel = 300, 0
		g.Step()
	}
	if g.score != 1 {
		t.Errorf("score = %d after 20 more frames, expected still 1", g.score)
	}
}

func TestPipeCollisionStrictBounds(t *testing.T) {
	// Gap spans [200, 350] with the default gap size of 150.
	tests := []struct {
		name  string
		pipeX float64
		birdY float64
		hit   bool
	}{
		{"inside gap", 70, 275, false},
		{"poking above gap top", 70, 211.9, true},
		{"touching gap top exactly", 70, 212, false}, // Edge contact is not a hit
		{"poking below gap bottom", 70, 338.1, true},
		{"touching gap bottom exactly", 70, 338, false},
		{"left of bird, touching edge", 16, 275, false}, // Pipe right edge == bird left edge
		{"right of bird, touching edge", 92, 211, false},
		{"horizontal overlap, vertical miss", 80, 275, false},
		{"horizontal overlap, vertical hit", 80, 205, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newPlayingGame(t, 200)
			g.birdY = tc.birdY
			got := g.hitsPipe(Pipe{X: tc.pipeX, GapTop: 200})
			if got != tc.hit {
				t.Errorf("hitsPipe(x=%g, birdY=%g) = %v, expected %v", tc.pipeX, tc.birdY, got, tc.hit)
			}
		})
	}
}

func TestCollisionEndsSession(t *testing.T) {
	g := newPlayingGame(t, 200)
	g.tick = 1
	g.score = 4

	// Pipe overlapping the bird with the bird above the gap
	g.pipes.pushBack(Pipe{X: 70, GapTop: 200})
	g.birdY = 100

	g.Step()

	if g.mode != ModeGameOver {
		t.Fatalf("mode = %v after collision, expected game over", g.mode)
	}
	if g.best != 4 {
		t.Errorf("best = %d after game over, expected max(best, score) = 4", g.best)
	}

	// Game over freezes all physics
	y, vel, tick := g.birdY, g.birdVel, g.tick
	g.Step()
	if g.birdY != y || g.birdVel != vel || g.tick != tick {
		t.Error("Step in game over must not mutate physics state")
	}

	// A second finish is a no-op
	g.score = 99
	g.finish()
	if g.best != 4 {
		t.Errorf("best = %d after redundant finish, expected 4", g.best)
	}
}

func TestGroundAndCeiling(t *testing.T) {
	t.Run("ground", func(t *testing.T) {
		g := newPlayingGame(t, 200)
		g.birdY = 579 // Ground line at 580, bird bottom exceeds after one fall frame
		g.birdVel = 5
		g.Step()
		if g.mode != ModeGameOver {
			t.Error("hitting the ground should end the session")
		}
	})

	t.Run("ceiling", func(t *testing.T) {
		g := newPlayingGame(t, 200)
		g.birdY = 13
		g.birdVel = -5
		g.Step()
		if g.mode != ModeGameOver {
			t.Error("hitting the ceiling should end the session")
		}
	})

	t.Run("safely between", func(t *testing.T) {
		g := newPlayingGame(t, 200)
		g.birdY = 300
		g.Step()
		if g.mode != ModePlaying {
			t.Error("mid-air bird should keep playing")
		}
	})
}

func TestFrontPipeDespawn(t *testing.T) {
	g := newPlayingGame(t, 200)
	g.tick = 1

	// Front pipe right edge will be at -24 after one move: past the
	// 20-unit margin beyond the left boundary.
	g.pipes.pushBack(Pipe{X: -74, GapTop: 200, Scored: true})
	g.pipes.pushBack(Pipe{X: 200, GapTop: 200})

	g.Step()

	if g.pipes.len() != 1 {
		t.Fatalf("expected front pipe removed, have %d pipes", g.pipes.len())
	}
	if g.pipes.front().X != 198 {
		t.Errorf("wrong pipe removed, front at %g, expected 198", g.pipes.front().X)
	}

	// A pipe inside the margin stays
	g2 := newPlayingGame(t, 200)
	g2.tick = 1
	g2.pipes.pushBack(Pipe{X: -68, GapTop: 200, Scored: true}) // Right edge -18 after move
	g2.Step()
	if g2.pipes.len() != 1 {
		t.Error("pipe within the despawn margin must not be removed")
	}
}

func TestPipeOrderInvariant(t *testing.T) {
	g := newPlayingGame(t, 200)

	for frame := 0; frame < 600; frame++ {
		g.Step()
		g.birdY, g.birdVel = 275, 0 // Stay mid-gap

		for i := 1; i < g.pipes.len(); i++ {
			if g.pipes.at(i-1).X > g.pipes.at(i).X {
				t.Fatalf("frame %d: pipe order violated: pipe %d at %g right of pipe %d at %g",
					frame, i-1, g.pipes.at(i-1).X, i, g.pipes.at(i).X)
			}
		}
	}
}
