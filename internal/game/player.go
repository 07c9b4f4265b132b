package game

import (
	"github.com/arcadelab/strider/internal/assets"
	"github.com/arcadelab/strider/internal/core"
)

// updatePlayer runs the per-frame player state machine: gravity, jump
// edge, position integration, floor clamp, animation. The player never
// moves horizontally; the world scrolls past it.
func (g *Game) updatePlayer(in core.InputFrame, dt float64) {
	p := g.reg.MustPlayer()

	// Gravity first, capped at terminal velocity.
	p.Vel.Y += g.cfg.Physics.Gravity * dt
	if p.Vel.Y > g.cfg.Physics.MaxFallSpeed {
		p.Vel.Y = g.cfg.Physics.MaxFallSpeed
	}

	// Jump only from the ground, on the key's press edge.
	if g.isGrounded(p) && in.Has(core.ActionJump) {
		p.Vel.Y = g.cfg.Physics.JumpImpulse
		g.audio.PlayClip(g.reg.MustSound(SoundJump))
	}

	p.Pos.Y += p.Vel.Y * dt

	// Snap back to the floor line.
	if p.Pos.Y >= g.floorY {
		p.Pos.Y = g.floorY
		p.Vel.Y = 0
	}

	g.animatePlayer(p, dt)
}

// isGrounded reports whether the player stands on the floor line.
// Grounded state is derived from position, not stored.
func (g *Game) isGrounded(p *Entity) bool {
	return p.Pos.Y >= g.floorY
}

// animatePlayer advances the 2-frame run cycle while grounded and holds
// the airborne frame otherwise. The hit frame is forced by the collision
// stage and never reached here because the game is already over.
func (g *Game) animatePlayer(p *Entity, dt float64) {
	if !g.isGrounded(p) {
		p.Frame = assets.PlayerFrameAir
		p.FrameTimer = 0
		return
	}

	p.FrameTimer += dt
	if p.FrameTimer >= g.cfg.Player.AnimInterval {
		p.FrameTimer = 0
		if p.Frame == assets.PlayerFrameRunA {
			p.Frame = assets.PlayerFrameRunB
		} else {
			p.Frame = assets.PlayerFrameRunA
		}
	}
}
