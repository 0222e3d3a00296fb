package main

// NoTTL is the TTL of an entity that lives until something kills it.
const NoTTL = int64(-1)

// Spawner is something that takes in new entities. The EntityManager is
// one. Entities that create other entities hold a Spawner instead of
// reaching for the world.
type Spawner interface {
	Add(e *Entity) *Entity
}

// Reactions is what an entity does when it gets hit and when its TTL runs
// out. Entities without Reactions just sit there and take it.
type Reactions interface {
	OnHit(e *Entity, now int64)
	OnExpire(e *Entity, now int64)
}

// Entity is anything in the world that gets drawn. It moves by its Motion
// and shows its Animation. Pos is cached: it is where the Motion said the
// entity is at the last Iterate.
type Entity struct {
	Id         int64
	CreateTime int64
	Motion     Motion
	Pos        Pos
	TTL        int64
	Alive      bool
	Anim       Animation
	Reactions  Reactions
	// Shown is the frame the entity showed in the last world step. Draw()
	// only reads it, so drawing doesn't move animations forward.
	Shown Frame
}

func NewEntity(anim Animation, motion Motion, ttl int64, now int64) *Entity {
	e := &Entity{
		CreateTime: now,
		Motion:     motion,
		Pos:        motion.StartPos(),
		TTL:        ttl,
		Alive:      true,
		Anim:       anim,
	}
	e.Shown = e.Anim.Peek()
	return e
}

func (e *Entity) IsAlive() bool {
	return e.Alive
}

// Bounds is the rectangle the current frame covers on the screen.
func (e *Entity) Bounds() Rectangle {
	sz := e.Anim.Peek().Sprite.Size()
	pos := e.Pos.ToPt()
	return NewRectangleI(pos.X, pos.Y, sz.X, sz.Y)
}

// Touches does the actual hit test. First the cheap check if pt is inside
// the current frame at all, then the check that the pixel under pt is not
// transparent. The alpha of the animation doesn't matter, a faded entity is
// as solid as an opaque one.
func (e *Entity) Touches(pt Pt) bool {
	b := e.Bounds()
	if !b.ContainsPt(pt) {
		return false
	}
	return e.Anim.Peek().Sprite.IsSolid(pt.Minus(b.Min))
}

// Collision is a shot at pt. It returns true if the shot hit the entity and
// lets the entity react to it.
func (e *Entity) Collision(pt Pt, now int64) bool {
	if !e.Touches(pt) {
		return false
	}
	// An entity that already died this frame is still in the live list until
	// the manager commits. It can still be hit but it doesn't react twice.
	if e.Alive && e.Reactions != nil {
		e.Reactions.OnHit(e, now)
	}
	return true
}

// Iterate moves the entity to where it should be at now and kills it if it
// outlived its TTL.
func (e *Entity) Iterate(now int64) {
	e.Pos = e.Motion.PosAt(now)
	if e.Alive && e.TTL != NoTTL && now-e.CreateTime > e.TTL {
		e.Alive = false
		if e.Reactions != nil {
			e.Reactions.OnExpire(e, now)
		}
	}
}

// Fragile are the Reactions of a target. It breaks when hit and blows up when
// it runs out of time, and either way leaves behind an explosion that plays
// once, centered on where the target was.
type Fragile struct {
	HitSpark  *FrameSequence
	Explosion *FrameSequence
	Spawner   Spawner
}

func (f *Fragile) OnHit(e *Entity, now int64) {
	e.Alive = false
	f.explode(e, f.HitSpark, now)
}

func (f *Fragile) OnExpire(e *Entity, now int64) {
	f.explode(e, f.Explosion, now)
}

func (f *Fragile) explode(e *Entity, seq *FrameSequence, now int64) {
	// Line up the center of the explosion with the center of the entity.
	pos := e.Pos.Minus(seq.Center.ToPos()).Plus(e.Anim.Seq.Center.ToPos())
	// One cycle of the explosion and it's gone.
	f.Spawner.Add(NewEntity(NewAnimation(seq), Still{pos}, seq.CycleTime, now))
}
