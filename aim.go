package main

// Sound is something that can be played, like the sound of a shot.
type Sound interface {
	Play()
}

// Aim is the gun under the cursor.
type Aim struct {
	// Trigger is true while the trigger is held. The gun is not automatic:
	// it doesn't fire again until the trigger is released and pressed again.
	Trigger   bool
	FireSound Sound
	// ReloadShotTime is the minimum number of ms between two shots.
	ReloadShotTime int64
	// ReloadClipTime is the time to reload a whole clip. There are no clips
	// yet, so nothing checks it.
	ReloadClipTime int64
	LastFire       int64
}

func NewAim(fireSound Sound, reloadShotTime int64, reloadClipTime int64) (a Aim) {
	a.FireSound = fireSound
	a.ReloadShotTime = reloadShotTime
	a.ReloadClipTime = reloadClipTime
	// Long enough ago that the first shot is ready for any sane reload time.
	a.LastFire = -10000
	return
}

// PressTrigger tries to fire a shot at pos. It returns true only if the gun
// actually fired.
func (a *Aim) PressTrigger(pos Pt, now int64) bool {
	if a.Trigger {
		return false
	}
	if now-a.LastFire < a.ReloadShotTime {
		// The trigger doesn't count as held, so keeping it pressed fires as
		// soon as the gun is ready.
		return false
	}
	a.LastFire = now
	a.Trigger = true
	if a.FireSound != nil {
		a.FireSound.Play()
	}
	return true
}

func (a *Aim) UnpressTrigger() {
	a.Trigger = false
}
