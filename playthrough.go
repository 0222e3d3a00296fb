package main

import (
	"bytes"
	"fmt"
	"github.com/google/uuid"
	"io"
	"slices"
)

// InputVersion is the version of the byte representation of the Playthrough
// structure. If the Playthrough structure changes such that serializing it
// produces a different array of bytes, then InputVersion must change as well.
// An executable can replay any playthrough with the same InputVersion and
// SimulationVersion as the ones in the executable.
const InputVersion = 1

// Playthrough is all the input sent to a World during one game. Given this
// input and the same simulation, the World ends up in the same state.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Level
	Id      uuid.UUID
	Seed    int64
	History []PlayerInput
}

func NewPlaythrough(l Level, seed int64) (p Playthrough) {
	p.InputVersion = InputVersion
	p.SimulationVersion = SimulationVersion
	p.ReleaseVersion = ReleaseVersion
	p.Level = l
	p.Id = uuid.New()
	p.Seed = seed
	return
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, p.InputVersion)
	Serialize(buf, p.SimulationVersion)
	Serialize(buf, p.ReleaseVersion)
	serializeLevel(buf, p.Level)
	Serialize(buf, p.Id)
	Serialize(buf, p.Seed)
	SerializeSlice(buf, p.History)
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.TargetKinds = slices.Clone(p.TargetKinds)
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough) {
	buf := bytes.NewBuffer(Unzip(data))
	Deserialize(buf, &p.InputVersion)
	if p.InputVersion != InputVersion {
		Check(fmt.Errorf("can't deserialize this playthrough - we are at "+
			"InputVersion %d and playthrough was generated with InputVersion "+
			"version %d",
			InputVersion, p.InputVersion))
	}
	Deserialize(buf, &p.SimulationVersion)
	Deserialize(buf, &p.ReleaseVersion)
	deserializeLevel(buf, &p.Level)
	Deserialize(buf, &p.Id)
	Deserialize(buf, &p.Seed)
	DeserializeSlice(buf, &p.History)
	return
}

func serializeLevel(w io.Writer, l Level) {
	Serialize(w, l.ReloadShotTime)
	Serialize(w, l.ReloadClipTime)
	Serialize(w, l.SpawnInterval)
	Serialize(w, l.TargetTTL)
	SerializeStrings(w, l.TargetKinds)
}

func deserializeLevel(r io.Reader, l *Level) {
	Deserialize(r, &l.ReloadShotTime)
	Deserialize(r, &l.ReloadClipTime)
	Deserialize(r, &l.SpawnInterval)
	Deserialize(r, &l.TargetTTL)
	DeserializeStrings(r, &l.TargetKinds)
}
