package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestStill(t *testing.T) {
	s := Still{Pos{13, 27}}
	assert.Equal(t, Pos{13, 27}, s.StartPos())
	assert.Equal(t, Pos{13, 27}, s.PosAt(0))
	assert.Equal(t, Pos{13, 27}, s.PosAt(123456))
}

func TestThrow_StartsAtStart(t *testing.T) {
	th := NewThrow(Pos{50, 300}, Pos{600, 200}, 2500, 1000)
	assert.Equal(t, Pos{50, 300}, th.StartPos())
	assert.Equal(t, Pos{50, 300}, th.PosAt(1000))
}

func TestThrow_LandsOnEnd(t *testing.T) {
	for _, start := range []int64{0, 1000, 7777} {
		th := NewThrow(Pos{50, 300}, Pos{600, 200}, 2500, start)
		pos := th.PosAt(start + 2500)
		assert.InDelta(t, 600, pos.X, 1e-9)
		assert.InDelta(t, 200, pos.Y, 1e-6)
	}

	// With numbers that floats represent exactly, X is exact.
	th := NewThrow(Pos{0, 0}, Pos{512, 100}, 2048, 0)
	assert.Equal(t, float64(512), th.PosAt(2048).X)
}

func TestThrow_FliesInAnArc(t *testing.T) {
	// Thrown from and landing at the same height, the object must go up
	// first.
	th := NewThrow(Pos{50, 300}, Pos{600, 300}, 2000, 0)
	assert.Less(t, th.PosAt(1000).Y, float64(300))
	assert.Less(t, th.PosAt(1).Y, float64(300))

	// Horizontal speed is constant.
	assert.InDelta(t, 50+550.0/2, th.PosAt(1000).X, 1e-9)

	// After landing it keeps falling.
	assert.Greater(t, th.PosAt(2500).Y, float64(300))
}

func TestThrow_NoGravityIsAStraightLine(t *testing.T) {
	th := NewThrowWithGravity(Pos{0, 0}, Pos{100, 200}, 1000, 0, 0)
	assert.InDelta(t, 50, th.PosAt(500).X, 1e-9)
	assert.InDelta(t, 100, th.PosAt(500).Y, 1e-9)
}

func TestThrow_ZeroDurationFails(t *testing.T) {
	assert.Panics(t, func() {
		NewThrow(Pos{0, 0}, Pos{100, 100}, 0, 0)
	})
}
