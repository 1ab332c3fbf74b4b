package components

import "github.com/yohamta/donburi"

// Mode is the run's progression state.
type Mode int

const (
	ModeSplash Mode = iota
	ModePlaying
	ModePaused
	ModeLevelComplete
	ModeAllComplete
)

func (m Mode) String() string {
	switch m {
	case ModeSplash:
		return "splash"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeLevelComplete:
		return "levelComplete"
	case ModeAllComplete:
		return "allComplete"
	}
	return "unknown"
}

type SessionData struct {
	Mode      Mode
	Collected int
	Required  int
	// ModeTimer counts down the levelComplete dwell.
	ModeTimer   int
	HazardFlash int
	Tick        uint64
}

var Session = donburi.NewComponentType[SessionData]()
