// Package audio provides the sound backend for the runner, built on the
// beep speaker and mixer. All clips and the background music are
// synthesized at startup; there are no audio files to load. When the
// speaker cannot be initialized (headless terminals, missing devices) the
// engine degrades to a silent no-op rather than failing the game.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Clips holds the opaque ids of the loaded one-shot clips. The game keeps
// these ids in its sound registry and plays them back through PlayClip.
type Clips struct {
	Jump     int
	GameOver int
}

// Engine is the audio backend. Safe for use from the single game loop
// goroutine; internal state shared with the speaker goroutine is guarded
// by the speaker lock.
type Engine struct {
	mu       sync.Mutex
	disabled bool
	clips    []func() beep.Streamer // clip id -> fresh streamer factory
	mixer    *beep.Mixer
	music    *beep.Ctrl
	volume   *effects.Volume
	started  bool
}

// NewEngine creates the audio engine. With enabled=false, or when the
// speaker fails to initialize, the engine is created in silent mode and
// every method is a no-op.
func NewEngine(enabled bool) *Engine {
	e := &Engine{mixer: &beep.Mixer{}}

	if !enabled {
		e.disabled = true
		return e
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		e.disabled = true
		return e
	}

	// The music generator streams its bar endlessly on its own, so it
	// goes into the Ctrl directly; no loop wrapper is involved.
	e.music = &beep.Ctrl{
		Streamer: NewMusicGenerator(sampleRate),
		Paused:   true,
	}
	e.volume = &effects.Volume{
		Streamer: e.music,
		Base:     2,
		Volume:   0,
	}
	e.mixer.Add(e.volume)
	speaker.Play(e.mixer)
	e.started = true

	return e
}

// Disabled reports whether the engine is running in silent mode.
func (e *Engine) Disabled() bool {
	return e.disabled
}

// LoadClips registers the one-shot clips and returns their ids.
func (e *Engine) LoadClips() Clips {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.clips = []func() beep.Streamer{
		func() beep.Streamer { return NewJumpGenerator(sampleRate) },
		func() beep.Streamer { return NewStingGenerator(sampleRate) },
	}
	return Clips{Jump: 0, GameOver: 1}
}

// PlayClip plays a one-shot clip by id, fire and forget. Unknown ids are
// ignored.
func (e *Engine) PlayClip(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disabled || id < 0 || id >= len(e.clips) {
		return
	}

	streamer := e.clips[id]()
	speaker.Lock()
	e.mixer.Add(streamer)
	speaker.Unlock()
}

// StartMusic starts the background loop from the beginning. Calling it
// while music is already playing restarts the loop.
func (e *Engine) StartMusic() {
	if e.disabled {
		return
	}

	speaker.Lock()
	e.music.Streamer = NewMusicGenerator(sampleRate)
	e.music.Paused = false
	speaker.Unlock()
}

// StopMusic pauses the background loop.
func (e *Engine) StopMusic() {
	if e.disabled {
		return
	}

	speaker.Lock()
	e.music.Paused = true
	speaker.Unlock()
}

// SetMusicVolume sets the music loudness. v is linear in [0, 1]; zero
// silences the stream entirely.
func (e *Engine) SetMusicVolume(v float64) {
	if e.disabled {
		return
	}

	speaker.Lock()
	if v <= 0 {
		e.volume.Silent = true
	} else {
		e.volume.Silent = false
		e.volume.Volume = math.Log2(math.Min(v, 1))
	}
	speaker.Unlock()
}

// Close stops all playback. The beep speaker has no close method; clearing
// the mixer is the accepted way to silence it.
func (e *Engine) Close() {
	if e.disabled || !e.started {
		return
	}

	speaker.Lock()
	e.music.Paused = true
	speaker.Unlock()
	speaker.Clear()
}
