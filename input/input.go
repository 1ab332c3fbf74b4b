// Package input polls ebitengine devices and forwards the resulting
// actions to a session.
package input

import (
	cfg "github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/input/intent"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps each action to its keys and buttons.
var Bindings = map[intent.ActionID]InputBinding{
	intent.ActionGravityUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	intent.ActionGravityDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	intent.ActionGravityLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	intent.ActionGravityRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	intent.ActionBoost: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyJ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	intent.ActionRestart: {
		Keys:                   []ebiten.Key{ebiten.KeyR, ebiten.KeyK},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	intent.ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	intent.ActionStart: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
}

// Handler polls keyboard, touch and gamepads once per frame.
type Handler struct {
	swipes   *intent.SwipeTracker
	sticks   map[ebiten.GamepadID]*intent.StickLatch
	tilts    map[ebiten.GamepadID]*intent.TiltLatch
	touchIDs []ebiten.TouchID
	padIDs   []ebiten.GamepadID
}

func NewHandler() *Handler {
	return &Handler{
		swipes: intent.NewSwipeTracker(cfg.Input.SwipeThreshold),
		sticks: map[ebiten.GamepadID]*intent.StickLatch{},
		tilts:  map[ebiten.GamepadID]*intent.TiltLatch{},
	}
}

// Update forwards every action triggered this frame to cmd.
func (h *Handler) Update(cmd intent.Commander) {
	for action := intent.ActionNone + 1; action < intent.ActionCount; action++ {
		if h.justPressed(action) {
			intent.Dispatch(cmd, action)
		}
	}
	h.updateTouches(cmd)
	h.updateSticks(cmd)
}

func (h *Handler) justPressed(action intent.ActionID) bool {
	binding, ok := Bindings[action]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	h.padIDs = ebiten.AppendGamepadIDs(h.padIDs[:0])
	for _, id := range h.padIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, button := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				return true
			}
		}
	}
	return false
}

func (h *Handler) updateTouches(cmd intent.Commander) {
	h.touchIDs = inpututil.AppendJustPressedTouchIDs(h.touchIDs[:0])
	for _, id := range h.touchIDs {
		x, y := ebiten.TouchPosition(id)
		h.swipes.Begin(int(id), float64(x), float64(y))
	}

	h.touchIDs = inpututil.AppendJustReleasedTouchIDs(h.touchIDs[:0])
	for _, id := range h.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		if action := h.swipes.End(int(id), float64(x), float64(y)); action != intent.ActionNone {
			intent.Dispatch(cmd, action)
		}
	}
}

func (h *Handler) updateSticks(cmd intent.Commander) {
	h.padIDs = ebiten.AppendGamepadIDs(h.padIDs[:0])
	for _, id := range h.padIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		latch, ok := h.sticks[id]
		if !ok {
			latch = &intent.StickLatch{Deadzone: cfg.Input.AnalogDeadzone}
			h.sticks[id] = latch
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if action := latch.Update(x, y); action != intent.ActionNone {
			intent.Dispatch(cmd, action)
		}

		tilt, ok := h.tilts[id]
		if !ok {
			tilt = &intent.TiltLatch{StickLatch: intent.StickLatch{Deadzone: cfg.Input.TiltDeadzone}}
			h.tilts[id] = tilt
		}
		beta := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical) * cfg.Input.MaxTilt
		gamma := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal) * cfg.Input.MaxTilt
		if action := tilt.Update(beta, gamma); action != intent.ActionNone {
			intent.Dispatch(cmd, action)
		}
	}
}
