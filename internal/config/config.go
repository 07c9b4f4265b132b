// Package config provides YAML-based game configuration loading and the
// score-driven difficulty schedule for the runner.
package config

// Config contains all tunable parameters for the runner.
type Config struct {
	Physics    Physics          `yaml:"physics"`
	Player     Player           `yaml:"player"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Ambience   Ambience         `yaml:"ambience"`
	Difficulty []DifficultyStep `yaml:"difficulty"`
	Capacity   Capacity         `yaml:"capacity"`
	Audio      Audio            `yaml:"audio"`
}

// Physics defines the 1-D vertical physics parameters.
// Units are screen cells and seconds.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // downward acceleration, cells/s^2
	JumpImpulse  float64 `yaml:"jump_impulse"`   // initial jump velocity, negative = up
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // terminal velocity cap
}

// Player defines the player entity's placement and animation timing.
type Player struct {
	X            float64 `yaml:"x"`             // fixed horizontal position
	Scale        float64 `yaml:"scale"`         // visual scale multiplier
	GroundOffset int     `yaml:"ground_offset"` // rows between ground line and screen bottom
	AnimInterval float64 `yaml:"anim_interval"` // seconds per run-cycle frame
}

// Obstacles defines obstacle spawning and movement.
type Obstacles struct {
	Speed         float64 `yaml:"speed"`          // leftward scroll speed, cells/s
	Scale         float64 `yaml:"scale"`          // visual scale multiplier
	MinBurst      int     `yaml:"min_burst"`      // minimum obstacles per spawn trigger
	MaxBurst      int     `yaml:"max_burst"`      // maximum obstacles per spawn trigger
	DespawnMargin float64 `yaml:"despawn_margin"` // cells past the left edge before removal
}

// Ambience defines the background element spawner.
type Ambience struct {
	Speed         float64 `yaml:"speed"`          // leftward drift speed, cells/s
	SpawnDelay    float64 `yaml:"spawn_delay"`    // seconds between spawns
	Bands         []int   `yaml:"bands"`          // candidate vertical rows
	DespawnMargin float64 `yaml:"despawn_margin"` // cells past the left edge before removal
}

// DifficultyStep maps a score threshold to the obstacle spawn delay that
// applies from that score upward. Steps must be sorted by ascending score.
type DifficultyStep struct {
	Score int     `yaml:"score"` // inclusive lower bound
	Delay float64 `yaml:"delay"` // obstacle spawn delay in seconds
}

// Capacity fixes the sizes of the three slot-map registries.
type Capacity struct {
	Entities int `yaml:"entities"`
	Images   int `yaml:"images"`
	Sounds   int `yaml:"sounds"`
}

// Audio controls the sound backend.
type Audio struct {
	Enabled     bool    `yaml:"enabled"`
	MusicVolume float64 `yaml:"music_volume"` // 0.0 to 1.0
}
