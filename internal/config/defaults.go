package config

import (
	_ "embed"
)

//go:embed defaults/strider.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no YAML file is
// found anywhere on the search path and the embedded default fails to
// parse.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:      60.0,
			JumpImpulse:  -26.0,
			MaxFallSpeed: 45.0,
		},
		Player: Player{
			X:            8,
			Scale:        1.0,
			GroundOffset: 2,
			AnimInterval: 0.12,
		},
		Obstacles: Obstacles{
			Speed:         22.0,
			Scale:         1.0,
			MinBurst:      1,
			MaxBurst:      3,
			DespawnMargin: 4.0,
		},
		Ambience: Ambience{
			Speed:         6.0,
			SpawnDelay:    3.5,
			Bands:         []int{2, 4, 6},
			DespawnMargin: 8.0,
		},
		Difficulty: defaultDifficultySteps(),
		Capacity: Capacity{
			Entities: 64,
			Images:   8,
			Sounds:   8,
		},
		Audio: Audio{
			Enabled:     true,
			MusicVolume: 0.7,
		},
	}
}
