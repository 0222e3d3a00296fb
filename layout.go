package main

// Layout keeps the screen at a fixed size. The World works in screen pixels
// (targets are thrown from x = 50 to x = 600), so the screen never changes
// size even if the window does. Ebitengine scales the screen to fit the
// window and adds black bars where the aspect ratios don't match, and
// ebiten.CursorPosition() already reports positions in screen pixels.
func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}
