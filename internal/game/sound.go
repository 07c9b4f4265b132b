package game

// AudioPlayer is the capability surface the game needs from the audio
// backend. One-shot clips are fire-and-forget; music is a single stream
// that can be restarted and paused.
type AudioPlayer interface {
	PlayClip(id int)
	StartMusic()
	StopMusic()
	SetMusicVolume(v float64)
}

// SoundClips carries the backend's opaque clip ids into the sound
// registry at game start.
type SoundClips struct {
	Jump     int
	GameOver int
}

// NopAudio is an AudioPlayer that discards everything. Used in tests and
// when audio is fully disabled.
type NopAudio struct{}

func (NopAudio) PlayClip(int)           {}
func (NopAudio) StartMusic()            {}
func (NopAudio) StopMusic()             {}
func (NopAudio) SetMusicVolume(float64) {}
