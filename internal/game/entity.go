package game

import (
	"github.com/arcadelab/strider/internal/core"
	"github.com/arcadelab/strider/internal/slotmap"
)

// Entity is one mutable game object in the entity registry. Pos is the
// top-left corner of the sprite in screen cells; Y grows downward.
type Entity struct {
	Kind       EntityKind
	Pos        core.Vec2
	Vel        core.Vec2
	Frame      int     // current animation frame index into the sprite sheet
	FrameTimer float64 // seconds accumulated toward the next frame advance
	Scale      float64 // visual scale multiplier
	Self       slotmap.Handle
}
