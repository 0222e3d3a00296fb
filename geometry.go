package main

// Rectangle is an axis-aligned box of pixels. Min is inside the rectangle,
// Max is just outside of it, the same convention image.Rectangle uses. This
// way a sprite of size 10x10 drawn at (0, 0) covers exactly the pixels
// (0, 0) to (9, 9).
type Rectangle struct {
	Min Pt
	Max Pt
}

func NewRectangle(x1, y1, x2, y2 int64) (r Rectangle) {
	r.Min.X, r.Max.X = MinMax(x1, x2)
	r.Min.Y, r.Max.Y = MinMax(y1, y2)
	return
}

// NewRectangleI builds a rectangle from its top-left corner and its size.
func NewRectangleI(x, y, width, height int64) Rectangle {
	return NewRectangle(x, y, x+width, y+height)
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	} else {
		return x
	}
}

func Min(x int64, y int64) int64 {
	if x < y {
		return x
	} else {
		return y
	}
}

func Max(x int64, y int64) int64 {
	if x > y {
		return x
	} else {
		return y
	}
}

func MinMax(x int64, y int64) (int64, int64) {
	if x < y {
		return x, y
	} else {
		return y, x
	}
}

func (r Rectangle) Width() int64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() int64 {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) Size() Pt {
	return Pt{r.Width(), r.Height()}
}

func (r Rectangle) Center() Pt {
	return r.Min.Plus(r.Size().DivBy(2))
}

func (r Rectangle) ContainsPt(pt Pt) bool {
	return pt.X >= r.Min.X && pt.X < r.Max.X && pt.Y >= r.Min.Y && pt.Y < r.Max.Y
}

func (r Rectangle) Intersects(other Rectangle) bool {
	return r.Min.X < other.Max.X && r.Max.X > other.Min.X &&
		r.Min.Y < other.Max.Y && r.Max.Y > other.Min.Y
}
