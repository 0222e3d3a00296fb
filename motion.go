package main

import "fmt"

// DefaultGravity is in pixels per ms squared. Positive Y goes down the
// screen, so a positive gravity pulls things down.
const DefaultGravity = 0.0001

// Motion decides where an entity is. It has two modes:
// - StartPos is where the entity is placed when it is created, before the
// world ever asked where it should be at a certain time.
// - PosAt is where the entity is at the absolute world time now, in ms.
// A Motion never changes after it is created, so it is safe to share and
// copy.
type Motion interface {
	StartPos() Pos
	PosAt(now int64) Pos
}

// Still is a Motion that stays where it started.
type Still struct {
	Start Pos
}

func (s Still) StartPos() Pos {
	return s.Start
}

func (s Still) PosAt(now int64) Pos {
	return s.Start
}

// Throw is the motion of something thrown from Start so that it lands on
// End after Duration ms. The horizontal speed is constant, the vertical speed
// is pulled by Gravity.
type Throw struct {
	Start     Pos
	StartTime int64
	Velocity  Pos
	Gravity   float64
}

func NewThrow(start Pos, end Pos, duration int64, now int64) Throw {
	return NewThrowWithGravity(start, end, duration, now, DefaultGravity)
}

func NewThrowWithGravity(start Pos, end Pos, duration int64, now int64,
	gravity float64) (t Throw) {
	if duration <= 0 {
		Check(fmt.Errorf("throw duration must be positive, got %d", duration))
	}
	d := float64(duration)
	t.Start = start
	t.StartTime = now
	t.Gravity = gravity
	t.Velocity.X = (end.X - start.X) / d
	// Aim higher by exactly what gravity will pull the object down by the
	// time it lands, so that it lands on End.Y.
	t.Velocity.Y = (end.Y - start.Y - gravity*d*d) / d
	return
}

func (t Throw) StartPos() Pos {
	return t.Start
}

func (t Throw) PosAt(now int64) Pos {
	dt := float64(now - t.StartTime)
	pos := t.Start.Plus(t.Velocity.Times(dt))
	pos.Y += t.Gravity * dt * dt
	return pos
}
