// Package game implements Strider, a side-scrolling runner: jump over the
// cacti scrolling in from the right, survive as long as you can. Every
// mutable game object lives in a generational slot-map registry; all
// access goes through handles that can never alias a recycled slot.
package game

import (
	"fmt"
	"math/rand"

	"github.com/arcadelab/strider/internal/assets"
	"github.com/arcadelab/strider/internal/config"
	"github.com/arcadelab/strider/internal/core"
	"github.com/arcadelab/strider/internal/slotmap"
)

// Game owns the registries, score, timers, RNG and the running/game-over
// state machine. It is driven by Step once per rendered frame and read by
// Render in a second, read-only pass over the same registries.
type Game struct {
	reg     *Registries
	cfg     config.Config
	runtime core.RuntimeConfig
	rng     *rand.Rand
	audio   AudioPlayer
	sprites *assets.Library
	clips   SoundClips

	score         int
	obstacleTimer float64
	ambienceTimer float64
	lastBand      int // index into cfg.Ambience.Bands of the previous spawn, -1 initially
	gameOver      bool
	paused        bool
	tickCount     int

	// Game-over sting dispatch is decoupled by one frame: the collision
	// stage arms it, the dispatch stage of the NEXT Step plays it. The
	// stop-music effect lands a frame before the sting.
	stingQueued  bool
	stingArmedAt int

	groundY int     // screen row of the ground line
	floorY  float64 // player top-left Y when standing on the ground
}

// New creates a game. Reset must be called before the first Step.
func New(cfg config.Config, sprites *assets.Library, audio AudioPlayer, clips SoundClips) *Game {
	if audio == nil {
		audio = NopAudio{}
	}
	return &Game{
		cfg:     cfg,
		sprites: sprites,
		audio:   audio,
		clips:   clips,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "strider"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Strider"
}

// Reset initializes or restarts the game from scratch: fresh registries,
// reseeded RNG, all resources re-registered, one player entity inserted.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.reg = newRegistries(g.cfg.Capacity)

	g.score = 0
	g.obstacleTimer = 0
	g.ambienceTimer = 0
	g.lastBand = -1
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.stingQueued = false

	g.groundY = runtime.ScreenH - g.cfg.Player.GroundOffset
	playerH := float64(g.sprites.Player.Height()) * g.cfg.Player.Scale
	g.floorY = float64(g.groundY) - playerH

	g.loadResources()
	g.insertPlayer()

	g.audio.SetMusicVolume(g.cfg.Audio.MusicVolume)
	g.audio.StartMusic()
}

// loadResources fills the image and sound registries. Capacity failures
// here are configuration bugs, not runtime conditions.
func (g *Game) loadResources() {
	images := []ImageRecord{
		{Kind: ImagePlayer, Sprite: g.sprites.Player},
		{Kind: ImageCactus, Sprite: g.sprites.Cactus},
		{Kind: ImageCloud, Sprite: g.sprites.Cloud},
	}
	for _, rec := range images {
		if _, err := g.reg.Images.Insert(rec); err != nil {
			panic(fmt.Sprintf("game: image registry too small: %v", err))
		}
	}

	sounds := []SoundRecord{
		{Kind: SoundJump, Clip: g.clips.Jump},
		{Kind: SoundGameOver, Clip: g.clips.GameOver},
	}
	for _, rec := range sounds {
		if _, err := g.reg.Sounds.Insert(rec); err != nil {
			panic(fmt.Sprintf("game: sound registry too small: %v", err))
		}
	}
}

// insertPlayer creates the immortal player entity on the ground.
func (g *Game) insertPlayer() {
	h, err := g.reg.Entities.Insert(Entity{
		Kind:  KindPlayer,
		Pos:   core.Vec2{X: g.cfg.Player.X, Y: g.floorY},
		Scale: g.cfg.Player.Scale,
		Frame: assets.PlayerFrameRunA,
	})
	if err != nil {
		panic(fmt.Sprintf("game: entity registry too small for the player: %v", err))
	}
	if p, ok := g.reg.Entities.Get(h); ok {
		p.Self = h
	}
}

// Step advances the simulation by one frame. dt is the elapsed time since
// the previous frame in seconds, supplied by the platform's frame clock.
//
// The update order is fixed: ambience, player, obstacles, collision,
// deferred sting dispatch, restart check.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if dt < 0 {
		dt = 0
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.updateAmbience(dt)
	if !g.gameOver {
		g.updatePlayer(in, dt)
		g.updateObstacles(dt)
		if g.checkCollisions() {
			g.onCollision()
		}
	}
	g.dispatchSting()
	if g.gameOver && in.Has(core.ActionRestart) {
		g.restart()
	}

	return core.StepResult{State: g.State()}
}

// onCollision applies the game-over effects: music stops now, the sting
// plays on the next tick, the player shows the hit frame.
func (g *Game) onCollision() {
	g.audio.StopMusic()
	g.stingQueued = true
	g.stingArmedAt = g.tickCount
	g.reg.MustPlayer().Frame = assets.PlayerFrameHit
	g.gameOver = true
}

// dispatchSting plays the queued game-over sting, but never in the same
// tick that armed it.
func (g *Game) dispatchSting() {
	if g.stingQueued && g.tickCount > g.stingArmedAt {
		g.audio.PlayClip(g.reg.MustSound(SoundGameOver))
		g.stingQueued = false
	}
}

// restart returns from GAME_OVER to RUNNING: score and timers reset, all
// obstacles removed, ambience left alone, the queued sting cancelled and
// the music restarted.
func (g *Game) restart() {
	g.score = 0
	g.obstacleTimer = 0
	g.ambienceTimer = 0

	p := g.reg.MustPlayer()
	p.Frame = assets.PlayerFrameRunA
	p.FrameTimer = 0
	p.Pos.Y = g.floorY
	p.Vel = core.Vec2{}

	g.removeEntities(KindObstacle)

	g.stingQueued = false
	g.gameOver = false
	g.audio.StartMusic()
}

// removeEntities removes every live entity of the given kind.
func (g *Game) removeEntities(kind EntityKind) {
	var doomed []slotmap.Handle
	g.reg.eachEntity(kind, func(h slotmap.Handle, _ *Entity) bool {
		doomed = append(doomed, h)
		return true
	})
	for _, h := range doomed {
		g.reg.Entities.Remove(h)
	}
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}
