package game

import (
	"github.com/arcadelab/strider/internal/core"
	"github.com/arcadelab/strider/internal/slotmap"
)

// checkCollisions tests the player's hitbox against every live obstacle,
// in registry slot order, and reports whether any overlap was found. The
// scan stops at the first hit; only one collision matters per frame.
//
// Hitboxes are circles centered on the sprite, with the radius derived
// from the sprite frame's width. Touching circles do not collide.
func (g *Game) checkCollisions() bool {
	p := g.reg.MustPlayer()
	playerBox := g.hitbox(p, ImagePlayer)

	hit := false
	g.reg.eachEntity(KindObstacle, func(_ slotmap.Handle, e *Entity) bool {
		if playerBox.Overlaps(g.hitbox(e, ImageCactus)) {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// hitbox builds the collision circle for an entity from its sprite's
// frame dimensions and visual scale.
func (g *Game) hitbox(e *Entity, img ImageKind) core.Circle {
	sprite := g.reg.MustImage(img)
	w := float64(sprite.Width()) * e.Scale
	h := float64(sprite.Height()) * e.Scale
	return core.Circle{
		Center: core.Vec2{X: e.Pos.X + w/2, Y: e.Pos.Y + h/2},
		Radius: w / 2,
	}
}
