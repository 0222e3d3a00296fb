package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"slices"
)

func (g *Gui) Update() error {
	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.JustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.folderWatcher.FolderContentsChanged() {
		g.LoadGuiData()
		// New data may mean new rules, so a game in progress is not the same
		// game anymore. Recordings keep their own rules.
		if g.state == PlayScreen {
			g.StartNewGame()
		}
	}

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}

	return nil
}

func (g *Gui) UpdatePlayScreen() {
	// Get the player input. The gun fires while the left button is held,
	// the World decides if holding it means anything.
	var input PlayerInput
	x, y := ebiten.CursorPosition()
	input.Pos = Pt{int64(x), int64(y)}
	input.TriggerPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	g.mousePt = input.Pos
	g.world.Step(input)
	g.frameIdx++
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func (g *Gui) LeftClickPressedOn(r Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return r.ContainsPt(Pt{int64(x), int64(y)})
}

// replayUntil rebuilds the World and steps it through the first nFrames
// inputs of the playthrough. The shots of the replayed frames are silent.
func (g *Gui) replayUntil(nFrames int64) {
	g.world = NewWorldFromPlaythrough(g.playthrough, g.gfx, nil)
	g.world.Entities.LogEntities = g.LogEntities
	for i := range nFrames {
		g.world.Step(g.playthrough.History[i])
	}
	g.world.Aim.FireSound = g.fireSound()
	g.frameIdx = nFrames
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	if g.JustPressed(ebiten.KeySpace) {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if g.LeftClickPressedOn(g.buttonPlaybackBar) {
		x, _ := ebiten.CursorPosition()
		dx := int64(x) - g.buttonPlaybackBar.Min.X
		targetFrameIdx = dx * nFrames / g.buttonPlaybackBar.Width()
	}

	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyLeft) && !g.Pressed(ebiten.KeyShift) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyRight) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipArrow
	}

	if targetFrameIdx < 0 {
		targetFrameIdx = 0
	}

	if targetFrameIdx >= nFrames {
		targetFrameIdx = nFrames - 1
	}

	if targetFrameIdx != g.frameIdx {
		g.replayUntil(targetFrameIdx)
	}

	// Get input from recording.
	input := g.playthrough.History[g.frameIdx]
	// Remember cursor position in order to draw the virtual cursor during
	// Draw().
	g.mousePt = input.Pos

	if !g.playbackPaused && g.frameIdx < nFrames-1 {
		g.world.Step(input)
		g.frameIdx++
	}
}

func (g *Gui) UpdateDebugCrash() {
	var input PlayerInput
	if g.frameIdx < int64(len(g.playthrough.History)) {
		input = g.playthrough.History[g.frameIdx]
		g.mousePt = input.Pos
	}

	// Don't do anything, wait for the player to press a key.

	// Go to the next frame.
	goToNextFrame := g.JustPressed(ebiten.KeyD) || g.JustPressed(ebiten.KeyRight)
	if goToNextFrame && g.frameIdx < int64(len(g.playthrough.History)) {
		g.world.Step(input)
		g.frameIdx++
	}

	// Go to the previous frame.
	goToPreviousFrame := g.JustPressed(ebiten.KeyA) || g.JustPressed(ebiten.KeyLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		// I have no better way to go to the previous frame than redoing all the
		// frames from the beginning.
		g.replayUntil(g.frameIdx - 1)
	}
}
