package game

import (
	"fmt"

	"github.com/arcadelab/strider/internal/assets"
	"github.com/arcadelab/strider/internal/core"
	"github.com/arcadelab/strider/internal/slotmap"
)

const groundChar = '═'

// Render draws the current game state to the screen buffer. This is a
// read-only pass over the registries: by the time it runs, Step has
// finished and the frame state is consistent.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLine(0, g.groundY, dst.Width(), groundChar)

	// Ambience first so obstacles and the player draw over it.
	g.drawKind(dst, KindAmbience, ImageCloud, core.ColorGray)
	g.drawKind(dst, KindObstacle, ImageCactus, core.ColorGreen)
	g.drawKind(dst, KindPlayer, ImagePlayer, core.ColorBrightYellow)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawKind blits the sprite frame of every live entity of a kind.
func (g *Game) drawKind(dst *core.Screen, kind EntityKind, img ImageKind, color core.Color) {
	sprite := g.reg.MustImage(img)
	g.reg.eachEntity(kind, func(_ slotmap.Handle, e *Entity) bool {
		g.drawSprite(dst, sprite, e.Frame, e.Pos, color)
		return true
	})
}

// drawSprite blits one frame at a position, treating spaces as
// transparent.
func (g *Game) drawSprite(dst *core.Screen, sprite *assets.Sprite, frame int, pos core.Vec2, color core.Color) {
	x0 := int(pos.X)
	y0 := int(pos.Y)
	for dy, row := range sprite.Frame(frame) {
		for dx, r := range row {
			if r == ' ' {
				continue
			}
			dst.SetColored(x0+dx, y0+dy, r, color)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
