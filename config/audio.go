package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundStart
	SoundPickup
	SoundExitOpen
	SoundHazard
	SoundBoost
	SoundGravity
	SoundLevelComplete
	SoundAllComplete
)

// Tone is a synthesized cue: a sine sweep from StartHz to EndHz.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration int // milliseconds
	Volume   float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Tones         map[SoundID]Tone
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
		Tones: map[SoundID]Tone{
			SoundStart:         {StartHz: 440, EndHz: 880, Duration: 180, Volume: 0.8},
			SoundPickup:        {StartHz: 988, EndHz: 1319, Duration: 70, Volume: 0.7},
			SoundExitOpen:      {StartHz: 523, EndHz: 1047, Duration: 250, Volume: 0.8},
			SoundHazard:        {StartHz: 220, EndHz: 110, Duration: 200, Volume: 1.0},
			SoundBoost:         {StartHz: 330, EndHz: 660, Duration: 60, Volume: 0.5},
			SoundGravity:       {StartHz: 196, EndHz: 262, Duration: 40, Volume: 0.3},
			SoundLevelComplete: {StartHz: 660, EndHz: 1320, Duration: 300, Volume: 0.9},
			SoundAllComplete:   {StartHz: 262, EndHz: 1047, Duration: 600, Volume: 1.0},
		},
	}
}
