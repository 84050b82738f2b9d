package config

import (
	_ "embed"
)

//go:embed defaults/flapterm.yaml
var defaultYAML []byte

// Default returns the default game configuration.
// These values mirror defaults/flapterm.yaml.
func Default() Config {
	return Config{
		World: World{
			Width:        400,
			Height:       600,
			GroundOffset: 20,
		},
		Physics: Physics{
			Gravity:     0.25,
			FlapImpulse: -5.5,
			PipeSpeed:   2,
		},
		Obstacles: Obstacles{
			PipeWidth:     52,
			GapSize:       150,
			SpawnEvery:    140,
			MinTopHeight:  50,
			MinClearance:  50,
			DespawnMargin: 20,
		},
		Bird: Bird{
			X:      80,
			Radius: 12,
		},
	}
}
