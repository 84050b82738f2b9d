package flappy

// PipeView is the read-only pipe state exposed to the renderer.
type PipeView struct {
	X      float64
	GapTop int
}

// Snapshot captures the complete observable session state for the renderer
// and for determinism tests. The renderer reads it once per frame after
// Step completes and never mutates simulation state.
type Snapshot struct {
	Mode    Mode
	Score   int
	Best    int
	Tick    int
	BirdY   float64
	BirdVel float64 // Exposed for cosmetic rotation in the renderer
	Pipes   []PipeView
}

// Snapshot returns the current observable state. The pipe slice is a copy,
// in spawn (= left-to-right) order.
func (g *Game) Snapshot() Snapshot {
	pipes := make([]PipeView, g.pipes.len())
	for i := range pipes {
		p := g.pipes.at(i)
		pipes[i] = PipeView{X: p.X, GapTop: p.GapTop}
	}

	return Snapshot{
		Mode:    g.mode,
		Score:   g.score,
		Best:    g.best,
		Tick:    g.tick,
		BirdY:   g.birdY,
		BirdVel: g.birdVel,
		Pipes:   pipes,
	}
}
