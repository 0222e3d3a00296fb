package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same
// StateBytes() they are considered "the same", even though they may be
// implemented differently.
//
// What counts:
// - which entities are live, in which order, where they are and which frame
// they show with which alpha
// - the gun and the score
// The pending buffers of the manager don't count, by the end of a Step they are
// always empty.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, w.FrameIdx)
	Serialize(buf, w.Now)
	Serialize(buf, int64(w.Entities.Len()))
	for _, e := range w.Entities.Entities() {
		Serialize(buf, e.Id)
		Serialize(buf, e.Pos)
		Serialize(buf, e.Alive)
		Serialize(buf, e.Anim.ImgIndex)
		Serialize(buf, e.Shown.Alpha)
	}
	Serialize(buf, w.Aim.Trigger)
	Serialize(buf, w.Aim.LastFire)
	Serialize(buf, w.ShotsFired)
	Serialize(buf, w.TargetsHit)
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states of the World. It is meant to check if the
// state of the World at each frame in the playthrough is the same after a
// refactorization of the World:
// - Compute the RegressionId for a playthrough.
// - Refactor the World.
// - Compute the RegressionId for the same playthrough again.
// - If it changed, the refactoring changed how the game plays.
func RegressionId(p *Playthrough, gfx map[string]*FrameSequence) string {
	hash := sha256.New()

	// Run the playthrough without sound.
	w := NewWorldFromPlaythrough(*p, gfx, nil)
	hash.Write(w.StateBytes())
	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}
