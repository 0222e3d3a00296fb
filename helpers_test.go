package main

import (
	"image"
	"image/color"
)

// KeyStripeWidth is the width of the transparent stripe on the left side of
// test images.
const KeyStripeWidth = 5

// NewTestImage returns a w x h image that is solid red except for a stripe of
// ColorKey pixels on its left side.
func NewTestImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < KeyStripeWidth {
				img.SetNRGBA(x, y, ColorKey)
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: 200, A: 255})
			}
		}
	}
	return img
}

func NewTestSequence(name string, nFrames int, size int, cycleTime int64) *FrameSequence {
	var imgs []image.Image
	for range nFrames {
		imgs = append(imgs, NewTestImage(size, size))
	}
	info := DefaultSequenceInfo()
	info.CycleTime = cycleTime
	return NewFrameSequence(name, imgs, info)
}

// NewTestGfx has everything a World needs: two kinds of targets, 20x20, and
// the two explosions.
func NewTestGfx() map[string]*FrameSequence {
	return map[string]*FrameSequence{
		"smiley":     NewTestSequence("smiley", 3, 20, 600),
		"thing":      NewTestSequence("thing", 4, 20, 400),
		ExplosionGfx: NewTestSequence(ExplosionGfx, 6, 40, 600),
		HitSparkGfx:  NewTestSequence(HitSparkGfx, 3, 10, 150),
	}
}

// countingSound counts how many times it was played.
type countingSound struct {
	nPlayed int
}

func (s *countingSound) Play() {
	s.nPlayed++
}
