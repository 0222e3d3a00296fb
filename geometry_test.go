package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRectContainsPt(t *testing.T) {
	r := NewRectangle(10, 20, 30, 50)
	assert.True(t, r.ContainsPt(Pt{10, 20}))
	assert.True(t, r.ContainsPt(Pt{10, 25}))
	assert.True(t, r.ContainsPt(Pt{15, 25}))
	assert.True(t, r.ContainsPt(Pt{29, 49}))
	// Max is outside the rectangle.
	assert.False(t, r.ContainsPt(Pt{30, 50}))
	assert.False(t, r.ContainsPt(Pt{30, 25}))
	assert.False(t, r.ContainsPt(Pt{15, 50}))
	assert.False(t, r.ContainsPt(Pt{9, 20}))
	assert.False(t, r.ContainsPt(Pt{10, 19}))
	assert.False(t, r.ContainsPt(Pt{31, 51}))
}

func TestNewRectangleI(t *testing.T) {
	r := NewRectangleI(5, 7, 20, 10)
	assert.Equal(t, Pt{5, 7}, r.Min)
	assert.Equal(t, Pt{25, 17}, r.Max)
	assert.Equal(t, int64(20), r.Width())
	assert.Equal(t, int64(10), r.Height())
	assert.Equal(t, Pt{15, 12}, r.Center())

	// Corners given in any order produce the same rectangle.
	assert.Equal(t, NewRectangle(10, 20, 30, 50), NewRectangle(30, 50, 10, 20))
}

func TestRectIntersects(t *testing.T) {
	var r1, r2 Rectangle
	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(10, 20, 30, 50)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(15, 25, 35, 55)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(15, 10, 25, 60)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(30, 50, 60, 60)
	assert.False(t, r1.Intersects(r2))
	assert.False(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(0, 0, 300, 20)
	assert.False(t, r1.Intersects(r2))
	assert.False(t, r2.Intersects(r1))
}
