package intent

import "github.com/automoto/gravityman/shared/gamemath"

type point struct{ x, y float64 }

// SwipeTracker resolves touch strokes into gravity directions. Strokes
// shorter than the threshold on both axes count as taps.
type SwipeTracker struct {
	Threshold float64
	active    map[int]point
}

func NewSwipeTracker(threshold float64) *SwipeTracker {
	return &SwipeTracker{Threshold: threshold, active: map[int]point{}}
}

// Begin records where touch id went down.
func (s *SwipeTracker) Begin(id int, x, y float64) {
	s.active[id] = point{x, y}
}

// End closes touch id. It returns the swipe's action, ActionBoost for a tap,
// or ActionNone when the touch was never begun.
func (s *SwipeTracker) End(id int, x, y float64) ActionID {
	start, ok := s.active[id]
	if !ok {
		return ActionNone
	}
	delete(s.active, id)

	d, ok := gamemath.DirectionFromVector(x-start.x, y-start.y, s.Threshold)
	if !ok {
		return ActionBoost
	}
	return GravityAction(d)
}

// Active returns the number of touches in progress.
func (s *SwipeTracker) Active() int {
	return len(s.active)
}

// StickLatch turns an analog stick into discrete gravity actions. A
// direction fires once when the stick leaves the deadzone or changes
// dominant axis, and not again until it does so.
type StickLatch struct {
	Deadzone float64
	last     ActionID
}

// Update feeds the current stick position.
func (l *StickLatch) Update(x, y float64) ActionID {
	d, ok := gamemath.DirectionFromVector(x, y, l.Deadzone)
	if !ok {
		l.last = ActionNone
		return ActionNone
	}
	action := GravityAction(d)
	if action == l.last {
		return ActionNone
	}
	l.last = action
	return action
}

// TiltLatch does the same for device tilt angles in degrees. Left-right
// tilt (gamma) acts as the x axis and front-back tilt (beta) as y.
type TiltLatch struct {
	StickLatch
}

// Update feeds front-back (beta) and left-right (gamma) tilt.
func (l *TiltLatch) Update(beta, gamma float64) ActionID {
	return l.StickLatch.Update(gamma, beta)
}
