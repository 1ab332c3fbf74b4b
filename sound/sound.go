// Package sound plays the synthesized cue for each gameplay event.
package sound

import (
	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/sound/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// Player owns the audio context and a cache of rendered cues.
type Player struct {
	context *audio.Context
	cache   map[cfg.SoundID][]byte
	volume  float64
	muted   bool
	logger  *zap.Logger
}

// NewPlayer creates the process-wide audio context and renders every cue.
func NewPlayer(logger *zap.Logger) *Player {
	p := &Player{
		context: audio.NewContext(cfg.Audio.SampleRate),
		cache:   make(map[cfg.SoundID][]byte, len(cfg.Audio.Tones)),
		volume:  cfg.Audio.DefaultSFXVol,
		logger:  logger,
	}
	for id, tone := range cfg.Audio.Tones {
		p.cache[id] = synth.Render(tone, cfg.Audio.SampleRate, 1)
	}
	return p
}

// SetMuted silences or restores cues.
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
}

// Muted reports whether cues are silenced.
func (p *Player) Muted() bool {
	return p.muted
}

// PlayEvents plays the cue for each event in order.
func (p *Player) PlayEvents(events []components.Event) {
	for _, e := range events {
		p.Play(synth.CueFor(e.Kind))
	}
}

// Play starts one cue. Unknown or silent cues are ignored.
func (p *Player) Play(id cfg.SoundID) {
	if p.muted || id == cfg.SoundNone {
		return
	}
	pcm, ok := p.cache[id]
	if !ok || len(pcm) == 0 {
		return
	}
	player := p.context.NewPlayerFromBytes(pcm)
	player.SetVolume(p.volume)
	player.Play()
	p.logger.Debug("sfx", zap.Int("sound", int(id)))
}
