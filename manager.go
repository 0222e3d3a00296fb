package main

import (
	"log"
	"slices"
)

// EntityManager owns the entities of the world.
//
// Entities are created and killed while the manager goes through the live
// entities (a target that expires spawns its explosion from inside
// Iterate). Changing the live list while going through it means skipping
// or doing twice some entities, so changes are buffered instead:
// - Add puts an entity in NewlyCreated. It is not live until the next
// commit, so it is not iterated, hit or drawn this frame.
// - An entity that dies goes to NewlyDied. It stays live until the commit,
// so the rest of the pass still sees it.
// - The commit, at the end of Iteration, takes the dead out of Live and
// puts the newly created in.
// An entity that dies in frame N is gone from Live at the end of frame N.
type EntityManager struct {
	Live         []*Entity
	NewlyCreated []*Entity
	NewlyDied    []*Entity
	NextId       int64
	// LogEntities prints a line every time an entity is created or dies.
	LogEntities bool
}

// Add returns e so that the caller can keep it around and play with it
// later, even though it only becomes live at the next commit.
func (m *EntityManager) Add(e *Entity) *Entity {
	Assert(!slices.Contains(m.Live, e))
	m.NextId++
	e.Id = m.NextId
	if m.LogEntities {
		log.Printf("created entity %d (%s)", e.Id, e.Anim.Seq.Name)
	}
	m.NewlyCreated = append(m.NewlyCreated, e)
	return e
}

func (m *EntityManager) remove(e *Entity) {
	if m.LogEntities {
		log.Printf("died entity %d (%s)", e.Id, e.Anim.Seq.Name)
	}
	m.NewlyDied = append(m.NewlyDied, e)
}

// Iteration moves every live entity to time now, then commits.
func (m *EntityManager) Iteration(now int64) {
	for _, e := range m.Live {
		e.Iterate(now)
		if !e.Alive {
			m.remove(e)
		}
	}
	m.commit()
}

func (m *EntityManager) commit() {
	if len(m.NewlyDied) > 0 {
		m.Live = slices.DeleteFunc(m.Live, func(e *Entity) bool {
			return slices.Contains(m.NewlyDied, e)
		})
	}
	m.Live = append(m.Live, m.NewlyCreated...)
	m.NewlyCreated = m.NewlyCreated[:0]
	m.NewlyDied = m.NewlyDied[:0]
}

func (m *EntityManager) Len() int {
	return len(m.Live)
}

func (m *EntityManager) At(i int) *Entity {
	return m.Live[i]
}

// Entities returns the live entities. The slice belongs to the manager, only
// read it.
func (m *EntityManager) Entities() []*Entity {
	return m.Live
}
