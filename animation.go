package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"image"
	"image/color"
	_ "image/png"
)

// ColorKey is the color that is not really there. Pixels of this color are
// transparent when drawn and cannot be hit.
var ColorKey = color.NRGBA{R: 255, G: 0, B: 255, A: 255}

// UnsetCycleTime means the frame sequence doesn't say how long a cycle takes.
// Such an animation moves to the next image every time it is asked for one.
const UnsetCycleTime = int64(-1)

// NoFade is the value of Animation.FadeTime when no fade is in progress.
const NoFade = int64(-1)

// Sprite is one image of a frame sequence. The decoded image is kept because
// the world needs to read pixels for hit detection, which ebitengine only
// allows once the game runs. The ebitengine image is only built the first
// time something needs to draw it.
type Sprite struct {
	Src image.Image
	img *ebiten.Image
}

func NewSprite(src image.Image) *Sprite {
	return &Sprite{Src: src}
}

func (s *Sprite) Size() Pt {
	sz := s.Src.Bounds().Size()
	return Pt{int64(sz.X), int64(sz.Y)}
}

// IsSolid says if the pixel at pt, relative to the top-left corner of the
// sprite, is inside the sprite and not the ColorKey.
func (s *Sprite) IsSolid(pt Pt) bool {
	if !NewRectangleI(0, 0, s.Size().X, s.Size().Y).ContainsPt(pt) {
		return false
	}
	origin := s.Src.Bounds().Min
	c := s.Src.At(origin.X+int(pt.X), origin.Y+int(pt.Y))
	return color.NRGBAModel.Convert(c).(color.NRGBA) != ColorKey
}

// Img returns the image to draw, with ColorKey pixels made transparent.
func (s *Sprite) Img() *ebiten.Image {
	if s.img == nil {
		b := s.Src.Bounds()
		keyed := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(s.Src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				if c == ColorKey {
					c = color.NRGBA{}
				}
				keyed.SetNRGBA(x, y, c)
			}
		}
		s.img = ebiten.NewImageFromImage(keyed)
	}
	return s.img
}

// SequenceInfo is what a frame sequence's info.txt can say about it.
type SequenceInfo struct {
	CycleTime int64
	// Repeat is loaded but nothing uses it yet. Every animation loops.
	Repeat int64
	Alpha  int64
}

func DefaultSequenceInfo() SequenceInfo {
	return SequenceInfo{CycleTime: UnsetCycleTime, Repeat: 0, Alpha: 255}
}

// FrameSequence is the loaded, unchanging data of an animation. All frames
// have the same size. Many Animations can share one FrameSequence.
type FrameSequence struct {
	Name   string
	Frames []*Sprite
	Center Pt
	SequenceInfo
}

func NewFrameSequence(name string, imgs []image.Image, info SequenceInfo) *FrameSequence {
	if len(imgs) == 0 {
		Check(fmt.Errorf("frame sequence %s has no frames", name))
		return nil
	}
	s := &FrameSequence{Name: name, SequenceInfo: info}
	for _, img := range imgs {
		s.Frames = append(s.Frames, NewSprite(img))
	}
	s.Center = s.Frames[0].Size().DivBy(2)
	return s
}

func (s *FrameSequence) NFrames() int64 {
	return int64(len(s.Frames))
}

// Frame is what an Animation gives out to be drawn or hit-tested. It is a
// value, so changing the alpha of one Frame changes nothing else.
type Frame struct {
	Sprite *Sprite
	Alpha  int64
}

// Animation is an instance of a running FrameSequence. It remembers which
// image it is showing and since when, and its own fade.
type Animation struct {
	Seq           *FrameSequence
	ImgIndex      int64
	LastFrameTime int64
	FadeTime      int64
	FadeStart     int64
	OrgAlpha      int64
	CurAlpha      int64
	DestAlpha     int64
	FadeDiff      int64
}

func NewAnimation(seq *FrameSequence) (a Animation) {
	a.Seq = seq
	a.FadeTime = NoFade
	a.OrgAlpha = seq.Alpha
	a.CurAlpha = a.OrgAlpha
	a.DestAlpha = a.CurAlpha
	return
}

// framePeriod is how many ms an image is shown before moving to the next.
func (a *Animation) framePeriod() int64 {
	if a.Seq.CycleTime < 0 {
		return -1
	}
	return a.Seq.CycleTime / a.Seq.NFrames()
}

// Frame returns the image the animation shows at time now. Asking for a
// frame is what moves the animation forward: the image returned is the
// current one, and if it has been shown long enough the next call gets the
// next one.
func (a *Animation) Frame(now int64) Frame {
	f := Frame{Sprite: a.Seq.Frames[a.ImgIndex]}

	if now-a.LastFrameTime > a.framePeriod() {
		a.LastFrameTime = now
		a.ImgIndex++
	}
	if a.ImgIndex == a.Seq.NFrames() {
		a.ImgIndex = 0
	}

	a.updateFade(now)
	f.Alpha = a.CurAlpha
	return f
}

// Peek returns the current frame without moving the animation forward.
func (a *Animation) Peek() Frame {
	return Frame{Sprite: a.Seq.Frames[a.ImgIndex], Alpha: a.CurAlpha}
}

func (a *Animation) updateFade(now int64) {
	if a.FadeTime == NoFade {
		return
	}
	dt := now - a.FadeStart
	if dt >= a.FadeTime {
		a.CurAlpha = a.DestAlpha
		a.FadeTime = NoFade
		return
	}
	a.CurAlpha = a.DestAlpha + a.FadeDiff - dt*a.FadeDiff/a.FadeTime
}

// Fade changes the alpha of the animation to destAlpha, gradually, over
// duration ms. Fading to the alpha the animation already has fades it back
// to the alpha of its frame sequence, so the same call toggles the fade.
func (a *Animation) Fade(now int64, duration int64, destAlpha int64) {
	a.FadeStart = now
	a.FadeTime = Max(duration, 0)
	if a.CurAlpha == destAlpha {
		a.DestAlpha = a.OrgAlpha
	} else {
		a.DestAlpha = destAlpha
	}
	a.FadeDiff = a.CurAlpha - a.DestAlpha
}
