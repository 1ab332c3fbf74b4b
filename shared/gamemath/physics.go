package gamemath

import "math"

// Damp applies exponential friction: the speed keeps the given fraction of
// itself each tick.
func Damp(speed, friction float64) float64 {
	return speed * friction
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return ClampFloat(speed, -max, max)
}

// BoundsHit records which world edges a body was clamped against.
type BoundsHit struct {
	Left, Right, Top, Bottom bool
}

// Any reports whether any edge was hit.
func (h BoundsHit) Any() bool {
	return h.Left || h.Right || h.Top || h.Bottom
}

// ClampToWorld keeps body inside [0, worldW-body.W] x [0, worldH-body.H].
func ClampToWorld(body Rect, worldW, worldH float64) (Rect, BoundsHit) {
	var hit BoundsHit
	if body.X < 0 {
		body.X = 0
		hit.Left = true
	}
	if body.X > worldW-body.W {
		body.X = worldW - body.W
		hit.Right = true
	}
	if body.Y < 0 {
		body.Y = 0
		hit.Top = true
	}
	if body.Y > worldH-body.H {
		body.Y = worldH - body.H
		hit.Bottom = true
	}
	return body, hit
}

// TerminalSpeed is the speed at which per-tick gravity and exponential
// friction balance: v = (v + g) * f.
func TerminalSpeed(gravity, friction float64) float64 {
	if friction >= 1 {
		return math.Inf(1)
	}
	return gravity * friction / (1 - friction)
}
