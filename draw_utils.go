package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"image"
	"image/color"
)

// DrawFrame draws the frame of an entity with its top-left corner at (x, y),
// with the alpha of the frame.
func DrawFrame(screen *ebiten.Image, f Frame, x float64, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Min.X)+x, float64(screen.Bounds().Min.Y)+y)
	op.ColorScale.ScaleAlpha(float32(f.Alpha) / 255)
	screen.DrawImage(f.Sprite.Img(), op)
}

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the parent image in sub-images. I
	// think in local coordinates, so translate here once.
	minPt := screen.Bounds().Min
	ir := image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X), int(r.Max.Y))
	ir = ir.Add(minPt)
	return screen.SubImage(ir).(*ebiten.Image)
}

func FillRect(screen *ebiten.Image, r Rectangle, c color.Color) {
	SubImage(screen, r).Fill(c)
}

// DrawCross draws a small cross centered on pt, to show where a recorded
// cursor was.
func DrawCross(screen *ebiten.Image, pt Pt, c color.Color) {
	const size = 10
	FillRect(screen, NewRectangle(pt.X-size, pt.Y, pt.X+size+1, pt.Y+1), c)
	FillRect(screen, NewRectangle(pt.X, pt.Y-size, pt.X+1, pt.Y+size+1), c)
}
