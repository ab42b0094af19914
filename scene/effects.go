package scene

// SoundPlayer plays a sound file once. Failures stay behind the player; the
// scene never hears about them.
type SoundPlayer interface {
	PlaySoundEffect(path string)
}

// Effects buffers the side effects a tick produces so they are issued once the
// systems have finished.
type Effects struct {
	sounds []string
}

func newEffects() *Effects {
	return &Effects{}
}

// PlaySound queues a one-shot playback of the sound at path.
func (e *Effects) PlaySound(path string) {
	e.sounds = append(e.sounds, path)
}

// Sounds returns the queued sound paths in request order.
func (e *Effects) Sounds() []string {
	return e.sounds
}

// Flush issues every queued effect to player. Each request is played; nothing
// is merged.
func (e *Effects) Flush(player SoundPlayer) {
	if player != nil {
		for _, path := range e.sounds {
			player.PlaySoundEffect(path)
		}
	}
	e.sounds = e.sounds[:0]
}
