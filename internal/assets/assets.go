// Package assets loads the embedded sprite sheets. Sheets are plain-text
// rune grids with frames separated by lines containing only "---"; every
// frame in a sheet must have the same dimensions. Parse failures are fatal
// at startup: the game never runs with partial art.
package assets

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed sprites/*.txt
var spritesFS embed.FS

// Player animation frame indices within the player sheet.
const (
	PlayerFrameRunA = 0
	PlayerFrameRunB = 1
	PlayerFrameAir  = 2
	PlayerFrameHit  = 3
)

// Sprite is a parsed sheet: one or more equally sized rune-grid frames.
type Sprite struct {
	width  int
	height int
	frames [][][]rune // frame -> row -> runes
}

// Width returns the frame width in cells.
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the frame height in cells.
func (s *Sprite) Height() int {
	return s.height
}

// FrameCount returns the number of frames in the sheet.
func (s *Sprite) FrameCount() int {
	return len(s.frames)
}

// Frame returns the rune rows of the given frame. Out-of-range indices
// clamp to the last frame so a stale animation index never crashes a draw.
func (s *Sprite) Frame(i int) [][]rune {
	if i < 0 {
		i = 0
	}
	if i >= len(s.frames) {
		i = len(s.frames) - 1
	}
	return s.frames[i]
}

// Library holds every sprite the game needs, loaded once at startup.
type Library struct {
	Player *Sprite
	Cactus *Sprite
	Cloud  *Sprite
}

// Load parses all embedded sprite sheets.
func Load() (*Library, error) {
	player, err := loadSheet("sprites/player.txt", 4)
	if err != nil {
		return nil, err
	}
	cactus, err := loadSheet("sprites/cactus.txt", 1)
	if err != nil {
		return nil, err
	}
	cloud, err := loadSheet("sprites/cloud.txt", 1)
	if err != nil {
		return nil, err
	}

	return &Library{Player: player, Cactus: cactus, Cloud: cloud}, nil
}

// loadSheet reads and parses one embedded sheet, verifying it carries at
// least minFrames frames.
func loadSheet(path string, minFrames int) (*Sprite, error) {
	data, err := spritesFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", path, err)
	}

	sprite, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("assets: cannot parse %s: %w", path, err)
	}
	if sprite.FrameCount() < minFrames {
		return nil, fmt.Errorf("assets: %s has %d frames, need at least %d",
			path, sprite.FrameCount(), minFrames)
	}
	return sprite, nil
}

// Parse builds a Sprite from sheet text. Frames are separated by "---"
// lines; rows shorter than the widest row of the sheet are padded with
// spaces. All frames must end up the same height.
func Parse(text string) (*Sprite, error) {
	var rawFrames [][]string
	var current []string

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "---" {
			rawFrames = append(rawFrames, current)
			current = nil
			continue
		}
		current = append(current, strings.TrimRight(line, "\r"))
	}
	rawFrames = append(rawFrames, current)

	// Drop trailing blank rows of each frame (files usually end with a
	// newline) and find the sheet-wide width.
	width := 0
	for i, rows := range rawFrames {
		for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
			rows = rows[:len(rows)-1]
		}
		rawFrames[i] = rows
		for _, row := range rows {
			if n := len([]rune(row)); n > width {
				width = n
			}
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("empty sheet")
	}

	height := len(rawFrames[0])
	if height == 0 {
		return nil, fmt.Errorf("first frame is empty")
	}

	sprite := &Sprite{width: width, height: height}
	for i, rows := range rawFrames {
		if len(rows) != height {
			return nil, fmt.Errorf("frame %d is %d rows tall, want %d", i, len(rows), height)
		}
		frame := make([][]rune, height)
		for y, row := range rows {
			runes := []rune(row)
			for len(runes) < width {
				runes = append(runes, ' ')
			}
			frame[y] = runes[:width]
		}
		sprite.frames = append(sprite.frames, frame)
	}

	return sprite, nil
}
