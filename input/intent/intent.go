// Package intent turns device-level gestures into session commands. It has
// no device access of its own so the rules can be exercised headless.
package intent

import (
	"github.com/automoto/gravityman/shared/gamemath"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionGravityUp
	ActionGravityDown
	ActionGravityLeft
	ActionGravityRight
	ActionBoost
	ActionRestart
	ActionPause
	ActionStart
	ActionCount // Must be last - used for array sizing
)

// Commander is the command surface of a session.
type Commander interface {
	SetGravityDirection(dir string) bool
	TriggerBoost() bool
	TogglePause() bool
	RequestStart() bool
	RequestRestart() bool
}

// GravityAction maps a direction to its action.
func GravityAction(d gamemath.Direction) ActionID {
	switch d {
	case gamemath.Up:
		return ActionGravityUp
	case gamemath.Down:
		return ActionGravityDown
	case gamemath.Left:
		return ActionGravityLeft
	case gamemath.Right:
		return ActionGravityRight
	}
	return ActionNone
}

// Dispatch sends one action to cmd. Boost doubles as the start trigger on
// the splash screen, the same way a tap does.
func Dispatch(cmd Commander, action ActionID) bool {
	switch action {
	case ActionGravityUp:
		return cmd.SetGravityDirection(gamemath.Up.String())
	case ActionGravityDown:
		return cmd.SetGravityDirection(gamemath.Down.String())
	case ActionGravityLeft:
		return cmd.SetGravityDirection(gamemath.Left.String())
	case ActionGravityRight:
		return cmd.SetGravityDirection(gamemath.Right.String())
	case ActionBoost:
		if cmd.RequestStart() {
			return true
		}
		return cmd.TriggerBoost()
	case ActionRestart:
		return cmd.RequestRestart()
	case ActionPause:
		return cmd.TogglePause()
	case ActionStart:
		return cmd.RequestStart()
	}
	return false
}
