package game

import (
	"testing"

	"github.com/arcadelab/strider/internal/assets"
	"github.com/arcadelab/strider/internal/config"
	"github.com/arcadelab/strider/internal/core"
	"github.com/arcadelab/strider/internal/slotmap"
)

const testDt = 1.0 / 60.0

// recordingAudio captures backend calls so tests can assert on sequencing.
type recordingAudio struct {
	clips        []int
	musicStarted int
	musicStopped int
	volume       float64
}

func (a *recordingAudio) PlayClip(id int)          { a.clips = append(a.clips, id) }
func (a *recordingAudio) StartMusic()              { a.musicStarted++ }
func (a *recordingAudio) StopMusic()               { a.musicStopped++ }
func (a *recordingAudio) SetMusicVolume(v float64) { a.volume = v }

func newTestGame(t *testing.T, seed int64) (*Game, *recordingAudio) {
	t.Helper()

	lib, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() failed: %v", err)
	}

	audio := &recordingAudio{}
	g := New(config.Default(), lib, audio, SoundClips{Jump: 10, GameOver: 11})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g, audio
}

func countKind(g *Game, kind EntityKind) int {
	n := 0
	g.reg.eachEntity(kind, func(slotmap.Handle, *Entity) bool {
		n++
		return true
	})
	return n
}

// stepNoInput advances the simulation by the given number of frames.
func stepNoInput(g *Game, frames int) {
	in := core.NewInputFrame()
	for i := 0; i < frames; i++ {
		g.Step(in, testDt)
	}
}

// stepUntilGameOver runs without jumping until an obstacle hits the
// player, failing the test if it never happens.
func stepUntilGameOver(t *testing.T, g *Game) {
	t.Helper()

	in := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		if g.Step(in, testDt).State.GameOver {
			return
		}
	}
	t.Fatal("game never reached GAME_OVER without jump input")
}

func TestResetInsertsSingletonPlayerAndResources(t *testing.T) {
	g, audio := newTestGame(t, 1)

	if got := countKind(g, KindPlayer); got != 1 {
		t.Errorf("player count = %d, want 1", got)
	}
	if g.reg.Images.Len() != 3 {
		t.Errorf("image registry has %d records, want 3", g.reg.Images.Len())
	}
	if g.reg.Sounds.Len() != 2 {
		t.Errorf("sound registry has %d records, want 2", g.reg.Sounds.Len())
	}

	// Resources resolve by kind through the query layer.
	if g.reg.MustImage(ImageCactus) == nil {
		t.Error("cactus sprite missing")
	}
	if got := g.reg.MustSound(SoundJump); got != 10 {
		t.Errorf("jump clip id = %d, want 10", got)
	}

	if audio.musicStarted != 1 {
		t.Errorf("music started %d times on reset, want 1", audio.musicStarted)
	}
	if audio.volume != config.Default().Audio.MusicVolume {
		t.Errorf("music volume = %v, want %v", audio.volume, config.Default().Audio.MusicVolume)
	}
}

func TestJumpPhysics(t *testing.T) {
	g, audio := newTestGame(t, 1)
	p := g.reg.MustPlayer()

	if p.Pos.Y != g.floorY {
		t.Fatalf("player starts at y=%v, want floor %v", p.Pos.Y, g.floorY)
	}

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump, testDt)

	if p.Pos.Y >= g.floorY {
		t.Errorf("jump did not lift the player: y=%v, floor=%v", p.Pos.Y, g.floorY)
	}
	if len(audio.clips) != 1 || audio.clips[0] != 10 {
		t.Errorf("jump clip calls = %v, want [10]", audio.clips)
	}
	if p.Frame != assets.PlayerFrameAir {
		t.Errorf("airborne frame = %d, want %d", p.Frame, assets.PlayerFrameAir)
	}

	// A second jump press mid-air is ignored.
	g.Step(jump, testDt)
	if len(audio.clips) != 1 {
		t.Errorf("mid-air jump played a clip: %v", audio.clips)
	}

	// Gravity eventually brings the player back to the floor, clamped.
	stepNoInput(g, 600)
	if p.Pos.Y != g.floorY {
		t.Errorf("player did not land: y=%v, floor=%v", p.Pos.Y, g.floorY)
	}
	if p.Vel.Y != 0 {
		t.Errorf("landed player keeps velocity %v", p.Vel.Y)
	}
}

func TestRunCycleAnimation(t *testing.T) {
	g, _ := newTestGame(t, 1)
	p := g.reg.MustPlayer()

	seen := map[int]bool{}
	// Two full animation intervals while grounded.
	frames := int(2*g.cfg.Player.AnimInterval/testDt) + 2
	in := core.NewInputFrame()
	for i := 0; i < frames; i++ {
		g.Step(in, testDt)
		seen[p.Frame] = true
	}

	if !seen[assets.PlayerFrameRunA] || !seen[assets.PlayerFrameRunB] {
		t.Errorf("run cycle frames seen = %v, want both run frames", seen)
	}
	if seen[assets.PlayerFrameAir] || seen[assets.PlayerFrameHit] {
		t.Errorf("grounded run cycle showed a non-run frame: %v", seen)
	}
}

func TestObstacleBurstAfterInitialDelay(t *testing.T) {
	g, _ := newTestGame(t, 7)

	// 2.1 seconds at score 0 (delay 2.0s): exactly one burst of 1-3.
	stepNoInput(g, int(2.1/testDt))

	got := countKind(g, KindObstacle)
	if got < 1 || got > 3 {
		t.Errorf("obstacle count after 2.1s = %d, want 1..3", got)
	}
	if g.Score() != 0 {
		t.Errorf("score = %d before any obstacle despawned, want 0", g.Score())
	}
}

func TestObstacleDespawnIncrementsScore(t *testing.T) {
	g, _ := newTestGame(t, 3)

	// Move the player out of harm's way so nothing ends the run.
	g.reg.MustPlayer().Pos.Y = -100
	g.floorY = -100

	stepNoInput(g, int(2.1/testDt))
	spawned := countKind(g, KindObstacle)
	if spawned == 0 {
		t.Fatal("no obstacles spawned")
	}

	// Scroll long enough for the first burst to cross the whole screen.
	travel := (80.0 + 20.0) / g.cfg.Obstacles.Speed
	stepNoInput(g, int(travel/testDt))

	if g.Score() == 0 {
		t.Error("score did not increase after obstacles scrolled off-screen")
	}
}

func TestCollisionEndsRunAndDefersSting(t *testing.T) {
	g, audio := newTestGame(t, 7)

	stepUntilGameOver(t, g)

	if audio.musicStopped != 1 {
		t.Errorf("music stopped %d times on collision, want 1", audio.musicStopped)
	}
	if g.reg.MustPlayer().Frame != assets.PlayerFrameHit {
		t.Errorf("player frame = %d after collision, want hit frame", g.reg.MustPlayer().Frame)
	}

	// The sting is queued, not played, in the collision tick.
	if len(audio.clips) != 0 {
		t.Fatalf("sting played in the collision tick: %v", audio.clips)
	}

	// One more update tick dispatches it.
	stepNoInput(g, 1)
	if len(audio.clips) != 1 || audio.clips[0] != 11 {
		t.Errorf("clips after one more tick = %v, want [11]", audio.clips)
	}

	// And only once.
	stepNoInput(g, 5)
	if len(audio.clips) != 1 {
		t.Errorf("sting repeated: %v", audio.clips)
	}
}

func TestRestartInvariants(t *testing.T) {
	g, audio := newTestGame(t, 7)

	stepUntilGameOver(t, g)
	// Let ambience accumulate during game over; clouds keep drifting.
	stepNoInput(g, int(4.0/testDt))

	ambienceBefore := countKind(g, KindAmbience)
	if ambienceBefore == 0 {
		t.Fatal("expected ambience entities before restart")
	}
	startsBefore := audio.musicStarted

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	state := g.Step(restart, testDt).State

	if state.GameOver {
		t.Error("state still GAME_OVER after restart")
	}
	if state.Score != 0 {
		t.Errorf("score = %d after restart, want 0", state.Score)
	}
	if got := countKind(g, KindObstacle); got != 0 {
		t.Errorf("obstacle count = %d after restart, want 0", got)
	}
	if got := countKind(g, KindPlayer); got != 1 {
		t.Errorf("player count = %d after restart, want exactly 1", got)
	}
	if got := countKind(g, KindAmbience); got < ambienceBefore {
		t.Errorf("ambience count dropped from %d to %d on restart", ambienceBefore, got)
	}
	if g.reg.MustPlayer().Frame != assets.PlayerFrameRunA {
		t.Errorf("player frame = %d after restart, want first run frame", g.reg.MustPlayer().Frame)
	}
	if audio.musicStarted != startsBefore+1 {
		t.Errorf("music started %d times on restart, want one more than %d",
			audio.musicStarted, startsBefore)
	}
	if g.obstacleTimer != 0 || g.ambienceTimer != 0 {
		t.Errorf("timers not reset: obstacle=%v ambience=%v", g.obstacleTimer, g.ambienceTimer)
	}
}

func TestRestartCancelsQueuedSting(t *testing.T) {
	g, audio := newTestGame(t, 7)

	stepUntilGameOver(t, g)
	if len(audio.clips) != 0 {
		t.Fatal("sting played before the tick after collision")
	}

	// Restart in the very next tick. Whatever plays in that tick, no
	// further sting may fire after the restart.
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart, testDt)

	n := len(audio.clips)
	stepNoInput(g, 10)
	if len(audio.clips) != n {
		t.Errorf("sting fired after restart: %v", audio.clips)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g, _ := newTestGame(t, 5)

	stepNoInput(g, int(2.1/testDt))
	if countKind(g, KindObstacle) == 0 {
		t.Fatal("no obstacles to observe")
	}

	var xs []float64
	g.reg.eachEntity(KindObstacle, func(_ slotmap.Handle, e *Entity) bool {
		xs = append(xs, e.Pos.X)
		return true
	})

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, testDt)
	stepNoInput(g, 30)

	i := 0
	g.reg.eachEntity(KindObstacle, func(_ slotmap.Handle, e *Entity) bool {
		if e.Pos.X != xs[i] {
			t.Errorf("obstacle %d moved while paused: %v -> %v", i, xs[i], e.Pos.X)
		}
		i++
		return true
	})

	g.Step(pause, testDt) // unpause
	if g.State().Paused {
		t.Error("still paused after second pause press")
	}
}

func TestCapacityExhaustionSkipsSpawn(t *testing.T) {
	lib, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() failed: %v", err)
	}

	cfg := config.Default()
	cfg.Capacity.Entities = 2 // player + one obstacle at most

	g := New(cfg, lib, nil, SoundClips{})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9})

	// Several spawn cycles; the full registry must skip spawns, not panic.
	g.reg.MustPlayer().Pos.Y = -100
	g.floorY = -100
	stepNoInput(g, int(10.0/testDt))

	if total := g.reg.Entities.Len(); total > 2 {
		t.Errorf("entity registry holds %d entries, capacity 2", total)
	}
	if got := countKind(g, KindPlayer); got != 1 {
		t.Errorf("player count = %d, want 1", got)
	}
}

func TestAmbienceBandsNeverRepeat(t *testing.T) {
	g, _ := newTestGame(t, 11)

	// Track spawn rows over many ambience cycles. Successive spawns must
	// land in different bands.
	var rows []float64
	seen := map[slotmap.Handle]bool{}
	for i := 0; i < int(40.0/testDt); i++ {
		// Keep the player safe so the run never ends.
		g.reg.MustPlayer().Pos.Y = -100
		g.floorY = -100
		stepNoInput(g, 1)
		g.reg.eachEntity(KindAmbience, func(h slotmap.Handle, e *Entity) bool {
			if !seen[h] {
				seen[h] = true
				rows = append(rows, e.Pos.Y)
			}
			return true
		})
	}

	if len(rows) < 3 {
		t.Fatalf("only %d ambience spawns observed", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i] == rows[i-1] {
			t.Errorf("consecutive ambience spawns in the same band (row %v)", rows[i])
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Same seed and inputs produce identical runs.
	run := func() (int, int, int) {
		g, _ := newTestGame(t, 12345)
		in := core.NewInputFrame()
		for i := 0; i < 900; i++ {
			if i%45 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in, testDt)
			in.Clear()
			if g.State().GameOver {
				break
			}
		}
		return g.Score(), g.tickCount, countKind(g, KindObstacle)
	}

	s1, t1, o1 := run()
	s2, t2, o2 := run()
	if s1 != s2 || t1 != t2 || o1 != o2 {
		t.Errorf("runs diverged: (%d,%d,%d) vs (%d,%d,%d)", s1, t1, o1, s2, t2, o2)
	}
}
