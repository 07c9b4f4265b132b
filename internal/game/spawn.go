package game

import (
	"errors"

	"github.com/arcadelab/strider/internal/config"
	"github.com/arcadelab/strider/internal/core"
	"github.com/arcadelab/strider/internal/slotmap"
)

// updateObstacles runs the obstacle spawner: accumulate the countdown,
// spawn a burst when it elapses, move every obstacle, and despawn the
// ones that scrolled off the left edge (each worth one score point).
func (g *Game) updateObstacles(dt float64) {
	g.obstacleTimer += dt
	delay := config.ObstacleDelay(g.cfg.Difficulty, g.score)
	if g.obstacleTimer >= delay {
		g.obstacleTimer = 0
		g.spawnObstacleBurst()
	}

	g.moveEntities(KindObstacle, dt)
	removed := g.despawnOffscreen(KindObstacle,
		float64(g.sprites.Cactus.Width())*g.cfg.Obstacles.Scale,
		g.cfg.Obstacles.DespawnMargin)
	g.score += removed
}

// spawnObstacleBurst creates 1..3 obstacles in one trigger, laid out
// left-to-right just past the right edge, spaced one sprite width apart,
// all moving left at the fixed obstacle speed. A full entity registry
// skips the remainder of the burst; losing a spawn is not an error.
func (g *Game) spawnObstacleBurst() {
	cfg := g.cfg.Obstacles
	count := cfg.MinBurst
	if cfg.MaxBurst > cfg.MinBurst {
		count += g.rng.Intn(cfg.MaxBurst - cfg.MinBurst + 1)
	}

	width := float64(g.sprites.Cactus.Width()) * cfg.Scale
	height := float64(g.sprites.Cactus.Height()) * cfg.Scale
	y := float64(g.groundY) - height

	for i := 0; i < count; i++ {
		x := float64(g.runtime.ScreenW) + float64(i)*width
		h, err := g.reg.Entities.Insert(Entity{
			Kind:  KindObstacle,
			Pos:   core.Vec2{X: x, Y: y},
			Vel:   core.Vec2{X: -cfg.Speed},
			Scale: cfg.Scale,
		})
		if errors.Is(err, slotmap.ErrCapacity) {
			return
		}
		if e, ok := g.reg.Entities.Get(h); ok {
			e.Self = h
		}
	}
}

// updateAmbience runs the background spawner: constant delay, one cloud
// per trigger, drifting left at the slower ambience speed. Ambience keeps
// moving even after game over.
func (g *Game) updateAmbience(dt float64) {
	g.ambienceTimer += dt
	if g.ambienceTimer >= g.cfg.Ambience.SpawnDelay {
		g.ambienceTimer = 0
		g.spawnAmbience()
	}

	g.moveEntities(KindAmbience, dt)
	g.despawnOffscreen(KindAmbience,
		float64(g.sprites.Cloud.Width()),
		g.cfg.Ambience.DespawnMargin)
}

// spawnAmbience places one cloud in a vertical band different from the
// previous spawn's band.
func (g *Game) spawnAmbience() {
	bands := g.cfg.Ambience.Bands
	if len(bands) == 0 {
		return
	}

	band := g.rng.Intn(len(bands))
	for len(bands) > 1 && band == g.lastBand {
		band = g.rng.Intn(len(bands))
	}
	g.lastBand = band

	h, err := g.reg.Entities.Insert(Entity{
		Kind:  KindAmbience,
		Pos:   core.Vec2{X: float64(g.runtime.ScreenW), Y: float64(bands[band])},
		Vel:   core.Vec2{X: -g.cfg.Ambience.Speed},
		Scale: 1,
	})
	if err != nil {
		return // registry full, skip this spawn
	}
	if e, ok := g.reg.Entities.Get(h); ok {
		e.Self = h
	}
}

// moveEntities integrates position by velocity for every entity of a kind.
func (g *Game) moveEntities(kind EntityKind, dt float64) {
	g.reg.eachEntity(kind, func(_ slotmap.Handle, e *Entity) bool {
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
		return true
	})
}

// despawnOffscreen removes entities of a kind whose right edge has
// scrolled past the left screen edge by more than margin cells, returning
// how many were removed.
func (g *Game) despawnOffscreen(kind EntityKind, width, margin float64) int {
	var doomed []slotmap.Handle
	g.reg.eachEntity(kind, func(h slotmap.Handle, e *Entity) bool {
		if e.Pos.X+width < -margin {
			doomed = append(doomed, h)
		}
		return true
	})
	for _, h := range doomed {
		g.reg.Entities.Remove(h)
	}
	return len(doomed)
}
