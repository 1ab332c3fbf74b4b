// Package synth renders the game's sound cues as raw PCM and maps gameplay
// events to them.
package synth

import (
	"encoding/binary"
	"math"

	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
)

// CueFor returns the sound played for an event, or SoundNone.
func CueFor(kind components.EventKind) cfg.SoundID {
	switch kind {
	case components.EventStarted, components.EventRestarted:
		return cfg.SoundStart
	case components.EventItemCollected:
		return cfg.SoundPickup
	case components.EventExitOpened:
		return cfg.SoundExitOpen
	case components.EventHazardHit:
		return cfg.SoundHazard
	case components.EventBoost:
		return cfg.SoundBoost
	case components.EventGravityChanged:
		return cfg.SoundGravity
	case components.EventLevelComplete:
		return cfg.SoundLevelComplete
	case components.EventAllComplete:
		return cfg.SoundAllComplete
	}
	return cfg.SoundNone
}

// fadeSamples is the attack and release ramp length that keeps cues from clicking.
const fadeSamples = 64

// Render returns tone as 16-bit little-endian stereo PCM at sampleRate,
// the format ebitengine's audio players consume.
func Render(tone cfg.Tone, sampleRate int, volume float64) []byte {
	n := sampleRate * tone.Duration / 1000
	if n <= 0 {
		return nil
	}

	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := tone.StartHz + (tone.EndHz-tone.StartHz)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		amp := tone.Volume * volume * envelope(i, n)
		sample := int16(math.Sin(phase) * amp * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}

func envelope(i, n int) float64 {
	fade := min(fadeSamples, n/2)
	if fade == 0 {
		return 1
	}
	switch {
	case i < fade:
		return float64(i) / float64(fade)
	case i >= n-fade:
		return float64(n-1-i) / float64(fade)
	}
	return 1
}
