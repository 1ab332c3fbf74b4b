package game

import (
	"fmt"
	"strings"

	"github.com/automoto/gravityman/components"
)

// StatusLines returns the HUD text for the snapshot.
func (s Snapshot) StatusLines() []string {
	lines := []string{
		fmt.Sprintf("Level %d/%d %s", s.LevelIndex+1, s.MaxLevels, s.LevelName),
		"Gravity: " + strings.ToUpper(s.Gravity.String()),
		fmt.Sprintf("Items %d/%d", s.Collected, s.Required),
	}
	switch {
	case s.Goal.Open && s.Playing():
		lines = append(lines, "Exit open!")
	case s.Mode == components.ModePaused:
		lines = append(lines, "Paused")
	}
	return lines
}
