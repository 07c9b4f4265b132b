package game

// EntityKind discriminates the records sharing the entity registry.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindObstacle
	KindAmbience
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindObstacle:
		return "Obstacle"
	case KindAmbience:
		return "Ambience"
	default:
		return "Unknown"
	}
}

// ImageKind discriminates records in the image registry.
type ImageKind int

const (
	ImagePlayer ImageKind = iota
	ImageCactus
	ImageCloud
)

// SoundKind discriminates records in the sound registry.
type SoundKind int

const (
	SoundJump SoundKind = iota
	SoundGameOver
)
