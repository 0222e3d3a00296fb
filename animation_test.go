package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"testing"
)

func TestNewFrameSequence(t *testing.T) {
	seq := NewTestSequence("s", 4, 20, 400)
	assert.Equal(t, int64(4), seq.NFrames())
	assert.Equal(t, Pt{10, 10}, seq.Center)
	assert.Equal(t, int64(255), seq.Alpha)

	// Odd sizes round the center down.
	seq = NewFrameSequence("odd", []image.Image{NewTestImage(33, 33)},
		DefaultSequenceInfo())
	assert.Equal(t, Pt{16, 16}, seq.Center)
}

func TestNewFrameSequence_NoFramesFails(t *testing.T) {
	assert.Panics(t, func() {
		NewFrameSequence("empty", nil, DefaultSequenceInfo())
	})
}

func TestSprite_IsSolid(t *testing.T) {
	s := NewSprite(NewTestImage(20, 10))
	assert.Equal(t, Pt{20, 10}, s.Size())
	assert.False(t, s.IsSolid(Pt{0, 0}))
	assert.False(t, s.IsSolid(Pt{KeyStripeWidth - 1, 5}))
	assert.True(t, s.IsSolid(Pt{KeyStripeWidth, 5}))
	assert.True(t, s.IsSolid(Pt{19, 9}))
	assert.False(t, s.IsSolid(Pt{20, 9}))
	assert.False(t, s.IsSolid(Pt{19, 10}))
	assert.False(t, s.IsSolid(Pt{-1, 5}))
}

func TestSprite_IsSolidWithOffsetBounds(t *testing.T) {
	// Sub-images keep the coordinates of their parent, IsSolid works in
	// coordinates relative to the sprite.
	full := NewTestImage(40, 40).(*image.NRGBA)
	sub := full.SubImage(image.Rect(3, 0, 23, 20))
	s := NewSprite(sub)
	assert.False(t, s.IsSolid(Pt{0, 0}))
	assert.False(t, s.IsSolid(Pt{1, 0}))
	assert.True(t, s.IsSolid(Pt{2, 0}))
}

func TestAnimation_FrameAdvancesAfterPeriod(t *testing.T) {
	// 4 frames in 400 ms, so each frame is shown for 100 ms.
	seq := NewTestSequence("s", 4, 20, 400)
	a := NewAnimation(seq)

	f := a.Frame(50)
	assert.Same(t, seq.Frames[0], f.Sprite)
	assert.Equal(t, int64(0), a.ImgIndex)

	// The current frame is returned, then the animation moves on.
	f = a.Frame(101)
	assert.Same(t, seq.Frames[0], f.Sprite)
	assert.Equal(t, int64(1), a.ImgIndex)

	f = a.Frame(150)
	assert.Same(t, seq.Frames[1], f.Sprite)
	assert.Equal(t, int64(1), a.ImgIndex)

	// Exactly one period is not enough.
	a.Frame(201)
	assert.Equal(t, int64(1), a.ImgIndex)
	a.Frame(202)
	assert.Equal(t, int64(2), a.ImgIndex)
}

func TestAnimation_Wraps(t *testing.T) {
	seq := NewTestSequence("s", 3, 20, 300)
	a := NewAnimation(seq)
	var indexes []int64
	for now := int64(101); now <= 101*7; now += 101 {
		a.Frame(now)
		indexes = append(indexes, a.ImgIndex)
	}
	assert.Equal(t, []int64{1, 2, 0, 1, 2, 0, 1}, indexes)
}

func TestAnimation_UnsetCycleTimeAdvancesEveryRequest(t *testing.T) {
	seq := NewTestSequence("s", 2, 20, UnsetCycleTime)
	a := NewAnimation(seq)
	assert.Same(t, seq.Frames[0], a.Frame(0).Sprite)
	assert.Same(t, seq.Frames[1], a.Frame(0).Sprite)
	assert.Same(t, seq.Frames[0], a.Frame(0).Sprite)
}

func TestAnimation_PeekDoesNotAdvance(t *testing.T) {
	seq := NewTestSequence("s", 2, 20, UnsetCycleTime)
	a := NewAnimation(seq)
	for range 5 {
		assert.Same(t, seq.Frames[0], a.Peek().Sprite)
	}
	assert.Equal(t, int64(0), a.ImgIndex)
}

func TestAnimation_FadeInterpolates(t *testing.T) {
	seq := NewTestSequence("s", 1, 20, 100)
	a := NewAnimation(seq)
	a.Fade(1000, 1000, 0)
	assert.Equal(t, int64(255), a.Frame(1000).Alpha)
	assert.Equal(t, int64(128), a.Frame(1500).Alpha)
	assert.Equal(t, int64(0), a.Frame(2000).Alpha)
	assert.Equal(t, NoFade, a.FadeTime)
	// Done fading, it stays there.
	assert.Equal(t, int64(0), a.Frame(5000).Alpha)
}

func TestAnimation_FadeToggles(t *testing.T) {
	seq := NewTestSequence("s", 1, 20, 100)
	a := NewAnimation(seq)
	a.Fade(0, 1000, 50)
	a.Frame(1000)
	require.Equal(t, int64(50), a.CurAlpha)

	// Fading to 50 again goes back to the alpha of the sequence instead.
	a.Fade(1000, 1000, 50)
	assert.Equal(t, int64(255), a.DestAlpha)
	assert.Greater(t, a.Frame(1500).Alpha, int64(50))
	assert.Equal(t, int64(255), a.Frame(2000).Alpha)
}

func TestAnimation_ZeroFadeTimeIsInstant(t *testing.T) {
	seq := NewTestSequence("s", 1, 20, 100)
	a := NewAnimation(seq)
	a.Fade(100, 0, 10)
	assert.Equal(t, int64(10), a.Frame(100).Alpha)
}

func TestAnimation_InstancesDoNotShareAlpha(t *testing.T) {
	seq := NewTestSequence("s", 1, 20, 100)
	a1 := NewAnimation(seq)
	a2 := NewAnimation(seq)
	a1.Fade(0, 100, 0)
	f1 := a1.Frame(100)
	f2 := a2.Frame(100)
	assert.Equal(t, int64(0), f1.Alpha)
	assert.Equal(t, int64(255), f2.Alpha)
	assert.Equal(t, int64(255), seq.Alpha)

	// Frames are values.
	f2.Alpha = 3
	assert.Equal(t, int64(255), a2.Frame(100).Alpha)
}
