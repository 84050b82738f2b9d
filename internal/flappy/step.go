package flappy

import "math"

// Step advances the session by one frame. The external scheduler calls it
// once per display tick; behavior depends on the current mode.
func (g *Game) Step() {
	switch g.mode {
	case ModeStart:
		g.stepStart()
	case ModePlaying:
		g.stepPlaying()
	case ModeGameOver:
		// Frozen until the next flap resets the session.
	}
}

// stepStart sets the bird position to a pure function of elapsed wall-clock
// time. No velocity is involved.
func (g *Game) stepStart() {
	elapsed := g.now().Sub(g.startedAt).Seconds()
	phase := 2 * math.Pi * elapsed / bobPeriod.Seconds()
	g.birdY = g.cfg.World.Height/2 + bobAmplitude*math.Sin(phase)
}

// stepPlaying runs one frame of live physics in a fixed order: kinematics,
// spawn, per-pipe movement/collision/scoring, despawn, bounds, frame count.
// The first detected collision ends processing for the frame; pipes already
// handled keep their position update.
func (g *Game) stepPlaying() {
	g.birdVel += g.cfg.Physics.Gravity
	g.birdY += g.birdVel

	if g.tick%g.cfg.Obstacles.SpawnEvery == 0 {
		g.spawnPipe()
	}

	birdLeft := g.cfg.Bird.X - g.cfg.Bird.Radius
	for i := 0; i < g.pipes.len(); i++ {
		p := g.pipes.at(i)
		p.X -= g.cfg.Physics.PipeSpeed

		if g.hitsPipe(*p) {
			g.finish()
			return
		}
		if !p.Scored && birdLeft > p.Right(g.cfg.Obstacles.PipeWidth) {
			p.Scored = true
			g.score++
		}
	}

	if g.pipes.len() > 0 &&
		g.pipes.front().Right(g.cfg.Obstacles.PipeWidth) < -g.cfg.Obstacles.DespawnMargin {
		g.pipes.popFront()
	}

	if g.birdY+g.cfg.Bird.Radius > g.cfg.GroundY() || g.birdY-g.cfg.Bird.Radius < 0 {
		g.finish()
		return
	}

	g.tick++
}

// spawnPipe creates a pipe at the right world edge with a gap top drawn
// uniformly from the validated range.
func (g *Game) spawnPipe() {
	min, max := g.cfg.GapTopRange()
	g.pipes.pushBack(Pipe{
		X:      g.cfg.World.Width,
		GapTop: g.gaps.GapTop(min, max),
	})
}

// hitsPipe tests the bird against one pipe pair. The circular bird is
// approximated by an axis-aligned square of side 2r. All comparisons are
// strict, so exact edge-touching never collides.
func (g *Game) hitsPipe(p Pipe) bool {
	r := g.cfg.Bird.Radius
	left := g.cfg.Bird.X - r
	right := g.cfg.Bird.X + r

	if right <= p.X || left >= p.Right(g.cfg.Obstacles.PipeWidth) {
		return false
	}

	return g.birdY-r < float64(p.GapTop) ||
		g.birdY+r > p.GapBottom(g.cfg.Obstacles.GapSize)
}
