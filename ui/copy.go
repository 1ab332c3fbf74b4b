// Package ui holds the ebitenui overlays drawn on top of the playfield.
package ui

import "github.com/automoto/gravityman/components"

// Copy is the text of one overlay panel.
type Copy struct {
	Visible  bool
	Title    string
	Subtitle string
	Hint     string
}

// CopyFor returns the overlay text for mode. Active play has no overlay.
func CopyFor(mode components.Mode, levelName string) Copy {
	switch mode {
	case components.ModeSplash:
		return Copy{
			Visible:  true,
			Title:    "GRAVITY-MAN",
			Subtitle: "Collect the items, reach the exit",
			Hint:     "Arrows or swipe turn gravity. Enter or tap to start",
		}
	case components.ModePaused:
		return Copy{
			Visible:  true,
			Title:    "PAUSED",
			Subtitle: "P to resume",
			Hint:     "R restarts from the first level",
		}
	case components.ModeLevelComplete:
		return Copy{
			Visible:  true,
			Title:    "LEVEL COMPLETE",
			Subtitle: levelName,
		}
	case components.ModeAllComplete:
		return Copy{
			Visible:  true,
			Title:    "ALL LEVELS COMPLETE",
			Subtitle: "Well done!",
			Hint:     "R to return to the title screen",
		}
	}
	return Copy{}
}
