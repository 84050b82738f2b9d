// Package config provides YAML-based tuning for the flapterm simulation.
// All physics quantities are expressed in world units, not terminal cells;
// the view layer projects them onto the cell grid.
package config

import "fmt"

// Config contains all tuning constants for the game.
type Config struct {
	World     World     `yaml:"world"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Bird      Bird      `yaml:"bird"`
}

// World defines the fixed simulation dimensions, shared verbatim between
// the physics step and the renderer.
type World struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Ground line distance from world bottom
}

// Physics defines per-frame kinematics constants.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity each frame
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set on flap (negative = up)
	PipeSpeed   float64 `yaml:"pipe_speed"`   // Horizontal pipe movement per frame
}

// Obstacles defines pipe geometry and spawn policy.
type Obstacles struct {
	PipeWidth     float64 `yaml:"pipe_width"`
	GapSize       float64 `yaml:"gap_size"`       // Vertical opening between pipe halves
	SpawnEvery    int     `yaml:"spawn_every"`    // Frames between spawns
	MinTopHeight  int     `yaml:"min_top_height"` // Lower bound for the random gap top
	MinClearance  int     `yaml:"min_clearance"`  // Required room between gap bottom and ground
	DespawnMargin float64 `yaml:"despawn_margin"` // How far past the left edge a pipe may drift
}

// Bird defines the avatar's fixed horizontal placement and hitbox.
type Bird struct {
	X      float64 `yaml:"x"`      // Fixed horizontal position (center)
	Radius float64 `yaml:"radius"` // Collision radius; hitbox is a 2r square
}

// GroundY returns the world y-coordinate of the ground line.
func (c Config) GroundY() float64 {
	return c.World.Height - c.World.GroundOffset
}

// GapTopRange returns the inclusive [min, max] range for randomly drawn
// gap-top heights. The range may be empty for broken configs; Validate
// rejects those at startup.
func (c Config) GapTopRange() (min, max int) {
	min = c.Obstacles.MinTopHeight
	max = int(c.GroundY()-c.Obstacles.GapSize) - c.Obstacles.MinClearance
	return min, max
}

// Validate checks that the constants describe a playable world.
// A config that makes the gap-top range empty is a startup error,
// never a per-frame fault.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.World.GroundOffset < 0 || c.World.GroundOffset >= c.World.Height {
		return fmt.Errorf("config: ground_offset %g outside world height %g", c.World.GroundOffset, c.World.Height)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.FlapImpulse >= 0 {
		return fmt.Errorf("config: flap_impulse must be negative (upward), got %g", c.Physics.FlapImpulse)
	}
	if c.Physics.PipeSpeed <= 0 {
		return fmt.Errorf("config: pipe_speed must be positive, got %g", c.Physics.PipeSpeed)
	}
	if c.Obstacles.PipeWidth <= 0 {
		return fmt.Errorf("config: pipe_width must be positive, got %g", c.Obstacles.PipeWidth)
	}
	if c.Obstacles.SpawnEvery <= 0 {
		return fmt.Errorf("config: spawn_every must be positive, got %d", c.Obstacles.SpawnEvery)
	}
	if c.Bird.Radius <= 0 {
		return fmt.Errorf("config: bird radius must be positive, got %g", c.Bird.Radius)
	}
	if c.Bird.X-c.Bird.Radius < 0 || c.Bird.X+c.Bird.Radius > c.World.Width {
		return fmt.Errorf("config: bird at x=%g with radius %g leaves the world", c.Bird.X, c.Bird.Radius)
	}
	if min, max := c.GapTopRange(); max < min {
		return fmt.Errorf("config: gap_size %g leaves no room for a gap top in [%d, %d]",
			c.Obstacles.GapSize, min, max)
	}
	return nil
}
