package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"image"
	"path"
	"strconv"
	"strings"
)

// ParseSequenceInfo reads an info.txt. Each line is a key and a value
// separated by whitespace, for example "cycle_time 500". The file is a
// convenience, not a requirement, so nothing in it is ever an error:
// - if any line isn't exactly a key and a value, the whole file is ignored
// - if a value isn't a number, that key keeps its default
// - unknown keys are ignored
func ParseSequenceInfo(data []byte) SequenceInfo {
	info := DefaultSequenceInfo()
	values := map[string]string{}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return DefaultSequenceInfo()
		}
		values[fields[0]] = fields[1]
	}

	parse := func(key string, val *int64) {
		s, ok := values[key]
		if !ok {
			return
		}
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			*val = v
		}
	}
	parse("cycle_time", &info.CycleTime)
	parse("repeat", &info.Repeat)
	parse("alpha", &info.Alpha)
	return info
}

// LoadFrameSequence loads the folder dir: all of its .png files, in the
// order of their names, and its info.txt if there is one. A folder without
// images is a broken data folder and Check fails.
func LoadFrameSequence(fsys FS, dir string) *FrameSequence {
	info := DefaultSequenceInfo()
	infoFile := path.Join(dir, "info.txt")
	if FileExists(fsys, infoFile) {
		data, err := fsys.ReadFile(infoFile)
		if err == nil {
			info = ParseSequenceInfo(data)
		}
	}

	var imgs []image.Image
	for _, file := range GetFiles(fsys, dir, "*.png") {
		// A nil image means the read failed and Check already knows.
		if img := LoadImage(fsys, file); img != nil {
			imgs = append(imgs, img)
		}
	}
	return NewFrameSequence(path.Base(dir), imgs, info)
}

// LoadGfx loads every folder in dir as a frame sequence, named after the
// folder.
func LoadGfx(fsys FS, dir string) map[string]*FrameSequence {
	gfx := map[string]*FrameSequence{}
	for _, name := range GetDirs(fsys, dir) {
		gfx[name] = LoadFrameSequence(fsys, path.Join(dir, name))
	}
	return gfx
}

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible.
	previousVal := CheckCrashes
	if g.folderWatcher.Folder != "" {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		g.Config = DefaultConfig()
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}
		g.gfx = LoadGfx(g.FSys, "data/gfx")
		if g.Sound && g.audioContext == nil {
			g.audioContext = newAudioContext()
		}
		if g.audioContext != nil {
			g.sounds = LoadSounds(g.audioContext, g.FSys, "data/sounds")
		}

		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    20,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Shoot")
}

// fireSound is the sound of the gun, or silence if the game runs without
// audio or without the gun sound.
func (g *Gui) fireSound() Sound {
	if g.audioContext == nil || !g.Sound {
		return silence{}
	}
	return SoundOrSilence(g.sounds["gun"])
}

func newAudioContext() *audio.Context {
	if c := audio.CurrentContext(); c != nil {
		return c
	}
	return audio.NewContext(SampleRate)
}
