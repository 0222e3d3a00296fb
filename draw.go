package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"image/color"
)

const PlaybackBarHeight = int64(20)

func (g *Gui) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Entities are drawn in the order they became live, so explosions end up
	// on top of the targets they came from.
	for _, e := range g.world.Entities.Entities() {
		DrawFrame(screen, e.Shown, e.Pos.X, e.Pos.Y)
	}

	g.DrawHud(screen)

	if g.state == Playback || g.state == DebugCrash {
		// The real cursor is wherever the mouse is now, show where it was
		// when the playthrough was recorded.
		DrawCross(screen, g.mousePt, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
		g.DrawPlaybackBar(screen)
	}
}

func (g *Gui) DrawHud(screen *ebiten.Image) {
	message := fmt.Sprintf("shots: %d  hits: %d", g.world.ShotsFired,
		g.world.TargetsHit)
	hud := SubImage(screen, NewRectangleI(10, 10, ScreenWidth-20, 30))
	g.DrawText(hud, message, false, false, color.NRGBA{
		R: 230,
		G: 230,
		B: 230,
		A: 255,
	})
}

func (g *Gui) DrawPlaybackBar(screen *ebiten.Image) {
	bar := NewRectangleI(0, ScreenHeight-PlaybackBarHeight, ScreenWidth,
		PlaybackBarHeight)
	FillRect(screen, bar, color.NRGBA{
		R: 200,
		G: 200,
		B: 200,
		A: 255,
	})
	// Remember the region so that Update() can react when it's clicked.
	g.buttonPlaybackBar = bar

	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}
	cursorX := g.frameIdx * bar.Width() / nFrames
	cursor := NewRectangleI(cursorX-2, bar.Min.Y, 5, bar.Height())
	c := color.NRGBA{R: 40, G: 40, B: 200, A: 255}
	if g.playbackPaused {
		c = color.NRGBA{R: 200, G: 40, B: 40, A: 255}
	}
	FillRect(screen, cursor, c)
}

func (g *Gui) DrawText(screen *ebiten.Image, message string, centerX bool, centerY bool, color color.Color) {
	// Remember that text there is an origin point for the text.
	// That origin point is kind of the lower-left corner of the bounds of the
	// text. Kind of. Read the BoundString docs to understand.
	// This means that if you do text.Draw at (x, y), most of the text will
	// appear above y, and a little bit under y. If you want all the pixels in
	// your text to be above y, you should do text.Draw at
	// (x, y - text.BoundString().Max.Y).
	textSize := text.BoundString(g.defaultFont, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	} else {
		offsetX = 0
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	} else {
		offsetY = 0
	}

	textX := screen.Bounds().Min.X + offsetX
	textY := screen.Bounds().Max.Y - offsetY - textSize.Max.Y
	text.Draw(screen, message, g.defaultFont, textX, textY, color)
}
