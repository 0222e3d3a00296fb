package main

import "fmt"

// SimulationVersion must change every time the World produces a different
// result from the same Playthrough. Old playthroughs can only be replayed
// by an executable with the same SimulationVersion.
const SimulationVersion = 1

// FPS is the rate at which the World steps. The clock of the World is the
// frame index, so time only moves when the World is stepped and a replayed
// playthrough sees exactly the same times as the original.
const FPS = 60

const ScreenWidth = 800
const ScreenHeight = 600

// Names of the frame sequences the World uses directly.
const HitSparkGfx = "coolexplode"
const ExplosionGfx = "explode"

// Level holds the rules of the game that configuration can change. It is part
// of the Playthrough so that a replay uses the rules of the original.
type Level struct {
	ReloadShotTime int64    `yaml:"ReloadShotTime"`
	ReloadClipTime int64    `yaml:"ReloadClipTime"`
	SpawnInterval  int64    `yaml:"SpawnInterval"`
	TargetTTL      int64    `yaml:"TargetTTL"`
	TargetKinds    []string `yaml:"TargetKinds"`
}

func DefaultLevel() Level {
	return Level{
		ReloadShotTime: 0,
		ReloadClipTime: 0,
		SpawnInterval:  500,
		TargetTTL:      3000,
		TargetKinds:    []string{"smiley", "thing"},
	}
}

// PlayerInput is everything the player does in one frame.
type PlayerInput struct {
	Pos            Pt
	TriggerPressed bool
}

type World struct {
	Level
	FrameIdx   int64
	Now        int64
	Rand       Rand
	Entities   EntityManager
	Aim        Aim
	Gfx        map[string]*FrameSequence
	Fragile    *Fragile
	NextSpawn  int64
	ShotsFired int64
	TargetsHit int64
}

// NewWorld builds a world. The World keeps pointers to itself (targets spawn
// explosions into w.Entities), so it is only ever handled by pointer.
func NewWorld(seed int64, l Level, gfx map[string]*FrameSequence,
	fireSound Sound) *World {
	w := &World{}
	w.Level = l
	w.Rand = NewRand(seed)
	w.Gfx = gfx
	w.Aim = NewAim(fireSound, l.ReloadShotTime, l.ReloadClipTime)
	if l.SpawnInterval <= 0 {
		Check(fmt.Errorf("spawn interval must be positive, got %d",
			l.SpawnInterval))
	}
	if len(l.TargetKinds) == 0 {
		Check(fmt.Errorf("level has no target kinds"))
	}
	w.Fragile = &Fragile{
		HitSpark:  w.Sequence(HitSparkGfx),
		Explosion: w.Sequence(ExplosionGfx),
		Spawner:   &w.Entities,
	}
	// The first target appears one interval after the start, like a timer
	// that was started when the game started.
	w.NextSpawn = l.SpawnInterval
	return w
}

func NewWorldFromPlaythrough(p Playthrough, gfx map[string]*FrameSequence,
	fireSound Sound) *World {
	return NewWorld(p.Seed, p.Level, gfx, fireSound)
}

func (w *World) Sequence(name string) *FrameSequence {
	seq, ok := w.Gfx[name]
	if !ok {
		Check(fmt.Errorf("missing frame sequence: %s", name))
	}
	return seq
}

// Step advances the world by one frame. The order matters:
// - The shot is resolved first, against where the entities were drawn last
// frame, which is what the player saw and aimed at.
// - Then entities move and expire, and the manager commits.
// - Then new targets are spawned. They become live at the next commit.
// - Last, every live entity picks the frame it shows.
func (w *World) Step(input PlayerInput) {
	w.FrameIdx++
	w.Now = w.FrameIdx * 1000 / FPS

	if input.TriggerPressed {
		if w.Aim.PressTrigger(input.Pos, w.Now) {
			w.Shoot(input.Pos)
		}
	} else {
		w.Aim.UnpressTrigger()
	}

	w.Entities.Iteration(w.Now)

	for w.Now >= w.NextSpawn {
		w.SpawnTarget()
		w.NextSpawn += w.SpawnInterval
	}

	for _, e := range w.Entities.Entities() {
		e.Shown = e.Anim.Frame(w.Now)
	}
}

// Shoot hit-tests a shot at pos against every live entity. A single shot can
// go through several targets.
func (w *World) Shoot(pos Pt) {
	w.ShotsFired++
	for _, e := range w.Entities.Entities() {
		wasAlive := e.Alive
		if e.Collision(pos, w.Now) && wasAlive && !e.Alive {
			w.TargetsHit++
		}
	}
}

// SpawnTarget throws a new target from the left side of the screen to the
// right side.
func (w *World) SpawnTarget() *Entity {
	start := Pos{50, float64(w.Rand.RInt(100, 500))}
	end := Pos{600, float64(w.Rand.RInt(100, 500))}
	duration := w.Rand.RInt(2000, 3000)
	kind := w.TargetKinds[w.Rand.RInt(0, int64(len(w.TargetKinds))-1)]

	motion := NewThrow(start, end, duration, w.Now)
	e := NewEntity(NewAnimation(w.Sequence(kind)), motion, w.TargetTTL, w.Now)
	e.Reactions = w.Fragile
	return w.Entities.Add(e)
}
