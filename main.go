package main

import (
	"embed"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/image/font"
	_ "image/png"
	"os"
	"time"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play. It is meant as a unique label for the functionality that a player
// is presented with, so it changes every time an executable is handed out,
// and it must change when SimulationVersion or InputVersion change.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	Playback
	DebugCrash
)

type Config struct {
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	LogEntities   bool   `yaml:"LogEntities"`
	Sound         bool   `yaml:"Sound"`
	Level         Level  `yaml:"Level"`
}

func DefaultConfig() Config {
	return Config{
		StartState:    "Play",
		RecordingFile: "last.shoot",
		Sound:         true,
		Level:         DefaultLevel(),
	}
}

type Gui struct {
	Config
	FSys                FS
	folderWatcher       FolderWatcher
	gfx                 map[string]*FrameSequence
	sounds              map[string]*SoundEffect
	audioContext        *audio.Context
	defaultFont         font.Face
	world               *World
	playthrough         Playthrough
	frameIdx            int64
	state               GameState
	playbackPaused      bool
	pressedKeys         []ebiten.Key
	justPressedKeys     []ebiten.Key // keys pressed in this frame
	mousePt             Pt
	buttonPlaybackBar   Rectangle
	FrameSkipShiftArrow int64
	FrameSkipArrow      int64
	devModeEnabled      bool
}

func main() {
	var g Gui
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Let the watcher remember the current timestamps, otherwise the
		// first Update() thinks everything changed and restarts the game.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	if g.StartState == "Playback" {
		g.state = Playback
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
		g.newWorld()
	} else if g.StartState == "DebugCrash" {
		g.state = DebugCrash
		// Don't crash when we are debugging the crash. This way the World
		// step that failed can run again and its results can be seen.
		CheckCrashes = false
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
		g.newWorld()
		// The last input caused the crash, so run the whole playthrough
		// except the last input.
		g.frameIdx = int64(len(g.playthrough.History)) - 1
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	} else if g.StartState == "Play" {
		g.state = PlayScreen
		g.StartNewGame()
	} else {
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)
	err := ebiten.RunGame(&g)
	Check(err)
}

// StartNewGame throws away the current game and starts a new one with the
// current Level and a new seed.
func (g *Gui) StartNewGame() {
	g.playthrough = NewPlaythrough(g.Level, time.Now().UnixNano())
	g.frameIdx = 0
	g.newWorld()
}

func (g *Gui) newWorld() {
	g.world = NewWorldFromPlaythrough(g.playthrough, g.gfx, g.fireSound())
	g.world.Entities.LogEntities = g.LogEntities
}
