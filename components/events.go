package components

import "github.com/yohamta/donburi"

// EventKind identifies a discrete gameplay event for audio and logging glue.
type EventKind int

const (
	EventStarted EventKind = iota
	EventHazardHit
	EventItemCollected
	EventExitOpened
	EventLevelComplete
	EventLevelLoaded
	EventAllComplete
	EventBoost
	EventGravityChanged
	EventPaused
	EventResumed
	EventRestarted
)

var eventNames = [...]string{
	EventStarted:        "started",
	EventHazardHit:      "hazardHit",
	EventItemCollected:  "itemCollected",
	EventExitOpened:     "exitOpened",
	EventLevelComplete:  "levelComplete",
	EventLevelLoaded:    "levelLoaded",
	EventAllComplete:    "allComplete",
	EventBoost:          "boost",
	EventGravityChanged: "gravityChanged",
	EventPaused:         "paused",
	EventResumed:        "resumed",
	EventRestarted:      "restarted",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

type Event struct {
	Kind       EventKind
	LevelIndex int
	Tick       uint64
}

type EventsData struct {
	Pending []Event
}

var Events = donburi.NewComponentType[EventsData]()
