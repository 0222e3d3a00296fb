package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"io"
	"path"
	"strings"
)

const SampleRate = 44100

// SoundEffect is a short sound that is decoded once and can be played many
// times, even on top of itself.
type SoundEffect struct {
	ctx  *audio.Context
	data []byte
}

func NewSoundEffect(ctx *audio.Context, fsys FS, name string) *SoundEffect {
	file, err := fsys.Open(name)
	Check(err)
	if err != nil {
		return nil
	}
	defer CloseFile(file)

	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), file)
	Check(err)
	if err != nil {
		return nil
	}
	data, err := io.ReadAll(stream)
	Check(err)
	return &SoundEffect{ctx: ctx, data: data}
}

func (s *SoundEffect) Play() {
	p := s.ctx.NewPlayerFromBytes(s.data)
	p.Play()
}

// LoadSounds loads every .wav file in dir. The name of a sound is the name of
// its file without the extension: "gun.wav" is "gun".
func LoadSounds(ctx *audio.Context, fsys FS, dir string) map[string]*SoundEffect {
	sounds := map[string]*SoundEffect{}
	for _, file := range GetFiles(fsys, dir, "*.wav") {
		name := strings.TrimSuffix(path.Base(file), path.Ext(file))
		sounds[name] = NewSoundEffect(ctx, fsys, file)
	}
	return sounds
}

// silence is a Sound for when there is no sound to play.
type silence struct{}

func (silence) Play() {}

// SoundOrSilence avoids handing the World a typed nil pointer, which would
// not compare equal to a nil Sound.
func SoundOrSilence(s *SoundEffect) Sound {
	if s == nil {
		return silence{}
	}
	return s
}
