// Package gamemath holds the pure arithmetic of the simulation: vectors,
// axis-aligned rectangles, overlap tests and the gravity direction model.
// It has no dependencies on donburi, resolv or ebitengine.
package gamemath

// Vec is a 2D vector.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v*s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned bounding box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Valid reports whether the rect has non-negative size.
func (r Rect) Valid() bool {
	return r.W >= 0 && r.H >= 0
}

// Contains reports whether inner lies entirely inside r (edges inclusive).
func (r Rect) Contains(inner Rect) bool {
	return inner.X >= r.X && inner.Y >= r.Y && inner.Right() <= r.Right() && inner.Bottom() <= r.Bottom()
}

// Overlaps reports whether a and b intersect. Intervals are open, so rects
// that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// Separation returns the minimum translation that pushes a out of b.
// The correction is applied along the axis needing the smaller push; exact
// ties resolve horizontally. ok is false when the rects do not overlap, in
// which case dx and dy are zero.
func Separation(a, b Rect) (dx, dy float64, ok bool) {
	if !Overlaps(a, b) {
		return 0, 0, false
	}

	intoRight := a.Right() - b.X  // a entered b moving right; push left
	intoLeft := b.Right() - a.X   // a entered b moving left; push right
	intoBottom := a.Bottom() - b.Y // a entered b moving down; push up
	intoTop := b.Bottom() - a.Y    // a entered b moving up; push down

	minX := min(intoRight, intoLeft)
	minY := min(intoBottom, intoTop)

	if minX <= minY {
		if intoRight < intoLeft {
			return -intoRight, 0, true
		}
		return intoLeft, 0, true
	}
	if intoBottom < intoTop {
		return 0, -intoBottom, true
	}
	return 0, intoTop, true
}

// ClampFloat constrains value to [lo, hi].
func ClampFloat(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
