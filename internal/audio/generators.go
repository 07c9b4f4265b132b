package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// JumpGenerator produces a short rising blip for the jump one-shot.
type JumpGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewJumpGenerator creates the jump blip generator.
func NewJumpGenerator(sr beep.SampleRate) *JumpGenerator {
	return &JumpGenerator{
		sr:      sr,
		samples: sr.N(time.Millisecond * 120),
	}
}

func (g *JumpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.samples)

		// Pitch rises from 440Hz to 880Hz over the blip
		freq := 440 + 440*progress
		envelope := 1.0 - progress

		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *JumpGenerator) Err() error {
	return nil
}

// StingGenerator produces the descending game-over sting.
type StingGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewStingGenerator creates the game-over sting generator.
func NewStingGenerator(sr beep.SampleRate) *StingGenerator {
	return &StingGenerator{
		sr:      sr,
		samples: sr.N(time.Millisecond * 600),
	}
}

func (g *StingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.samples)

		// Pitch falls from 330Hz to 110Hz, second harmonic underneath
		freq := 330 - 220*progress
		envelope := math.Exp(-progress * 3)

		sample := 0.3 * envelope * math.Sin(2*math.Pi*freq*t)
		sample += 0.1 * envelope * math.Sin(2*math.Pi*freq*0.5*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *StingGenerator) Err() error {
	return nil
}

// MusicGenerator produces the endless background loop: a soft bass pulse
// with a slow melodic arpeggio on top.
type MusicGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int // one bar
}

// NewMusicGenerator creates the background music generator.
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:      sr,
		samples: sr.N(time.Millisecond * 2000), // one 2s bar
	}
}

// arpeggio notes over one bar (A minor)
var musicNotes = []float64{220.00, 261.63, 329.63, 261.63}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	beat := g.samples / len(musicNotes)
	for i := range samples {
		barPos := g.pos % g.samples
		t := float64(barPos) / float64(g.sr)

		// Bass pulse at the start of each beat
		beatPos := barPos % beat
		pulseEnv := math.Exp(-float64(beatPos) / float64(g.sr) * 10)
		bass := 0.2 * pulseEnv * math.Sin(2*math.Pi*110*t)

		// Arpeggio note for the current beat
		note := musicNotes[(barPos/beat)%len(musicNotes)]
		lead := 0.1 * math.Sin(2*math.Pi*note*t)

		sample := bass + lead
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
