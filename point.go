package main

import "math"

// Pt is a position on the screen, in whole pixels. Mouse input and image
// coordinates are Pts.
type Pt struct {
	X int64
	Y int64
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

func (p Pt) DivBy(divide int64) Pt {
	return Pt{p.X / divide, p.Y / divide}
}

func (p Pt) ToPos() Pos {
	return Pos{float64(p.X), float64(p.Y)}
}

// Pos is a position in the world. Motions compute positions with sub-pixel
// precision, and entities only become pixels when they are drawn or
// hit-tested.
type Pos struct {
	X float64
	Y float64
}

func (p Pos) Plus(other Pos) Pos {
	return Pos{p.X + other.X, p.Y + other.Y}
}

func (p Pos) Minus(other Pos) Pos {
	return Pos{p.X - other.X, p.Y - other.Y}
}

func (p Pos) Times(multiply float64) Pos {
	return Pos{p.X * multiply, p.Y * multiply}
}

// ToPt rounds down to the pixel that contains the position.
func (p Pos) ToPt() Pt {
	return Pt{int64(math.Floor(p.X)), int64(math.Floor(p.Y))}
}
